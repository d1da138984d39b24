package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/repository"
)

// displayDateLayout is the dashboard date format, e.g. "03 September 2024"
const displayDateLayout = "02 January 2006"

// releaseDateLayouts are tried in order when parsing the free-form release
// date text. Devices whose date matches none of them sort last.
var releaseDateLayouts = []string{
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"02/01/2006",
	"January 2006",
	"2006",
}

// CatalogService handles device browsing, filtering and comparison
type CatalogService struct {
	deviceRepo *repository.DeviceRepository
}

func NewCatalogService(deviceRepo *repository.DeviceRepository) *CatalogService {
	return &CatalogService{deviceRepo: deviceRepo}
}

// Dashboard returns the full catalog projected for display, newest release
// first. Devices with unparsable release dates keep their stored relative
// order at the end of the list.
func (s *CatalogService) Dashboard(ctx context.Context) ([]model.DeviceSummary, error) {
	devices, err := s.deviceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return sortedSummaries(devices), nil
}

// Product looks up one device by id
func (s *CatalogService) Product(ctx context.Context, id string) (*model.Device, error) {
	return s.deviceRepo.FindByID(ctx, id)
}

// Filter returns devices matching the structured filter fields
func (s *CatalogService) Filter(ctx context.Context, req model.FilterRequest) ([]model.Device, error) {
	filter, err := repository.BuildFilter(req)
	if err != nil {
		return nil, err
	}
	return s.deviceRepo.Find(ctx, filter)
}

// Search returns devices matching a free-text term
func (s *CatalogService) Search(ctx context.Context, term string) ([]model.Device, error) {
	return s.deviceRepo.Find(ctx, repository.BuildSearch(term))
}

// Compare returns the devices for the given id set
func (s *CatalogService) Compare(ctx context.Context, ids []string) ([]model.Device, error) {
	return s.deviceRepo.FindByIDs(ctx, ids)
}

// sortedSummaries orders devices by release date descending and projects
// them to the dashboard subset
func sortedSummaries(devices []model.Device) []model.DeviceSummary {
	type dated struct {
		device model.Device
		t      time.Time
	}

	items := make([]dated, 0, len(devices))
	for _, d := range devices {
		t, _ := parseReleaseDate(d.ReleaseDate)
		items = append(items, dated{device: d, t: t})
	}

	// Stable so that unparsable dates (zero time) keep their stored order
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].t.After(items[j].t)
	})

	summaries := make([]model.DeviceSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, model.DeviceSummary{
			ID:          item.device.ID,
			Model:       item.device.Model,
			ImageURL:    item.device.ImageURL,
			Brand:       item.device.Brand,
			ReleaseDate: formatReleaseDate(item.t, item.device.ReleaseDate),
		})
	}
	return summaries
}

// parseReleaseDate parses free-form release date text. The bool reports
// whether any known layout matched.
func parseReleaseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatReleaseDate renders a parsed date as "DD Month YYYY", falling back
// to the stored text when parsing failed
func formatReleaseDate(t time.Time, original string) string {
	if t.IsZero() {
		return original
	}
	return t.Format(displayDateLayout)
}
