package banddetail

import (
	"strings"
	"testing"

	"github.com/llehouerou/turntable/internal/bandapi"
	"github.com/llehouerou/turntable/internal/ui/testutil"
)

func sampleBand() *bandapi.Band {
	return &bandapi.Band{
		ID:            1,
		Name:          "BTS",
		FormationDate: "2010-06-13",
		DebutDate:     "2013-06-13",
		Genre:         []bandapi.Genre{{ID: 1, Name: "K-Pop"}, {ID: 2, Name: "Hip hop"}},
		Members:       "RM, Jin, Suga",
		MemberInfo:    "RM: leader / Jin: vocals / Suga: rapper",
		Albums:        "Wings, BE, ",
		Awards:        "Billboard Music Award",
		Introduction:  strings.Repeat("A seven member group from Seoul. ", 5),
	}
}

func TestRender_Nil(t *testing.T) {
	if Render(nil, 80) != "" {
		t.Error("nil band should render nothing")
	}
	if Render(sampleBand(), 0) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestRender_Facts(t *testing.T) {
	out := Render(sampleBand(), 60)

	for _, want := range []string{
		"BTS",
		"Formed    2010-06-13",
		"Debut     2013-06-13",
		"Genre     K-Pop, Hip hop",
		"Members   RM, Jin, Suga",
		"• RM: leader",
		"• Jin: vocals",
		"• Wings",
		"• BE",
		"• Billboard Music Award",
		"About",
	} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("expected %q in:\n%s", want, testutil.StripANSI(out))
		}
	}
}

func TestRender_SkipsEmptyFields(t *testing.T) {
	out := Render(&bandapi.Band{Name: "Unknown"}, 60)

	for _, absent := range []string{"Formed", "Debut", "Genre", "Albums", "Awards", "About"} {
		if testutil.ContainsLine(out, absent) {
			t.Errorf("did not expect %q in:\n%s", absent, testutil.StripANSI(out))
		}
	}
}

func TestRender_FitsWidth(t *testing.T) {
	out := Render(sampleBand(), 40)
	for _, line := range testutil.SplitLines(out) {
		if w := testutil.MeasureWidth(line); w != 40 {
			t.Errorf("line width = %d, want 40: %q", w, line)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitList = %q", got)
	}
}
