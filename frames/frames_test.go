package frames

import (
	"bytes"
	"strings"
	"testing"

	"orthoslide/carousel"
	"orthoslide/config"
	"orthoslide/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		want    Op
		wantErr bool
	}{
		{in: "next", want: Op{Kind: OpNext}},
		{in: "NEXT", want: Op{Kind: OpNext}},
		{in: "prev", want: Op{Kind: OpPrev}},
		{in: "previous", want: Op{Kind: OpPrev}},
		{in: "goto:3", want: Op{Kind: OpGoTo, Arg: 3}},
		{in: "goto:-1", want: Op{Kind: OpGoTo, Arg: -1}},
		{in: "resize:1200", want: Op{Kind: OpResize, Arg: 1200}},
		{in: "goto", wantErr: true},
		{in: "goto:", wantErr: true},
		{in: "goto:x", wantErr: true},
		{in: "resize:-5", wantErr: true},
		{in: "next:1", wantErr: true},
		{in: "jump", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpString(t *testing.T) {
	for _, s := range []string{"next", "prev", "goto:4", "resize:800"} {
		op, err := ParseOp(s)
		require.NoError(t, err)
		assert.Equal(t, s, op.String())
	}
}

func TestParseOpsStopsAtFirstError(t *testing.T) {
	ops, err := ParseOps([]string{"next", "goto:2"})
	require.NoError(t, err)
	assert.Len(t, ops, 2)

	_, err = ParseOps([]string{"next", "bogus", "prev"})
	assert.ErrorContains(t, err, "bogus")
}

func clinicConfig(t *testing.T) config.CarouselConfig {
	t.Helper()
	cc, ok := config.DefaultConfig().Carousel(page.ClinicSelector)
	require.True(t, ok)
	return cc
}

func TestRunClinicScript(t *testing.T) {
	ops, err := ParseOps([]string{"next", "next", "goto:9", "resize:1200", "prev"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, page.Default(), clinicConfig(t), 960, ops))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)

	want := []string{
		"index=0 visible=2 window=[0,2) offset=0 prev=off next=on",
		"index=1 visible=2 window=[1,3) offset=-370 prev=on next=on",
		"index=2 visible=2 window=[2,4) offset=-740 prev=on next=on",
		"index=4 visible=2 window=[4,6) offset=-1480 prev=on next=off",
		"index=3 visible=3 window=[3,6) offset=-1110 prev=on next=off",
		"index=2 visible=3 window=[2,5) offset=-740 prev=on next=on",
	}
	for i, w := range want {
		assert.Contains(t, lines[i], w, "line %d", i)
	}
	assert.True(t, strings.HasPrefix(lines[0], "mount:960"))
	assert.True(t, strings.HasPrefix(lines[3], "goto:9"))
}

func TestRunHeroWraps(t *testing.T) {
	cc, ok := config.DefaultConfig().Carousel(page.HeroSelector)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, page.Default(), cc, 640, []Op{{Kind: OpPrev}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "index=2 visible=1")
}

func TestRunMissingSection(t *testing.T) {
	cc := config.CarouselConfig{Selector: ".nope", Policy: carousel.Clamp}
	var buf bytes.Buffer
	err := Run(&buf, page.Default(), cc, 960, nil)
	assert.ErrorContains(t, err, ".nope")
	assert.Empty(t, buf.String())
}

func TestFormat(t *testing.T) {
	line := Format("next", carousel.Frame{Index: 1, VisibleCount: 1, SlideCount: 3, WindowStart: 1, WindowEnd: 2, Offset: -360})
	assert.Equal(t, "next         index=1 visible=1 window=[1,2) offset=-360 prev=on next=on", line)
}
