package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"orthoslide/carousel"
	"orthoslide/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMirrorsSite(t *testing.T) {
	cfg := DefaultConfig()

	hero, ok := cfg.Carousel(page.HeroSelector)
	require.True(t, ok)
	assert.Equal(t, carousel.Wrap, hero.Policy)
	assert.Equal(t, 5000, hero.AutoAdvanceMs)
	assert.True(t, hero.Single)

	clinic, ok := cfg.Carousel(page.ClinicSelector)
	require.True(t, ok)
	assert.Equal(t, carousel.Clamp, clinic.Policy)
	assert.Equal(t, 0, clinic.AutoAdvanceMs)
	assert.Equal(t, 10, clinic.Gap)

	reviews, ok := cfg.Carousel(page.TestimonialsSelector)
	require.True(t, ok)
	assert.Equal(t, 20, reviews.Gap)

	vertical, ok := cfg.Carousel(page.VerticalSelector)
	require.True(t, ok)
	assert.Equal(t, 4000, vertical.AutoAdvanceMs)

	_, ok = cfg.Carousel(".nope")
	assert.False(t, ok)

	assert.Equal(t, 200*time.Millisecond, cfg.ResizeDebounce())
	assert.Equal(t, 500*time.Millisecond, cfg.LoaderDelay())
}

func TestCarouselConfigOptions(t *testing.T) {
	cfg := DefaultConfig()

	hero, _ := cfg.Carousel(page.HeroSelector)
	opts := hero.Options(nil, nil)
	assert.Equal(t, 5*time.Second, opts.AutoAdvance)
	assert.Equal(t, 1, opts.VisibleCount(4000))

	clinic, _ := cfg.Carousel(page.ClinicSelector)
	opts = clinic.Options(nil, nil)
	assert.Equal(t, carousel.Clamp, opts.Policy)
	assert.Equal(t, time.Duration(0), opts.AutoAdvance)
	assert.Equal(t, 1, opts.VisibleCount(600))
	assert.Equal(t, 2, opts.VisibleCount(900))
	assert.Equal(t, 3, opts.VisibleCount(1400))

	bare := CarouselConfig{Selector: ".x"}
	assert.Equal(t, 1, bare.Options(nil, nil).VisibleCount(2000))
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".orthoslide")

	cfg := loadConfigFrom(dir)
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"policy": "clamp"`)

	again := loadConfigFrom(dir)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigNormalizes(t *testing.T) {
	dir := t.TempDir()
	content := `{"content_path": "home.yaml", "carousels": [{"selector": ".hero-slider", "policy": "clamp"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg := loadConfigFrom(dir)
	assert.Equal(t, "home.yaml", cfg.ContentPath)
	assert.Equal(t, 200, cfg.ResizeDebounceMs)
	assert.Equal(t, 8, cfg.CellWidthPx)
	require.Len(t, cfg.Carousels, 1)
	assert.Equal(t, carousel.Clamp, cfg.Carousels[0].Policy)
}

func TestLoadConfigCorruptFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"carousels": [`), 0644))

	cfg := loadConfigFrom(dir)
	assert.Equal(t, DefaultConfig(), cfg)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.Contains(e.Name(), ".corrupt.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
}

func TestLoadConfigBadPolicyFallsBack(t *testing.T) {
	dir := t.TempDir()
	content := `{"carousels": [{"selector": ".hero-slider", "policy": "bounce"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	assert.Equal(t, DefaultConfig(), loadConfigFrom(dir))
}

func TestLoadPage(t *testing.T) {
	cfg := DefaultConfig()
	p, err := cfg.LoadPage()
	require.NoError(t, err)
	assert.Len(t, p.Sections, 4)

	cfg.ContentPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.LoadPage()
	assert.Error(t, err)
}
