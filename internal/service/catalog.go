package service

import (
	"errors"
	"fmt"
	"strings"

	"utmbot/internal/domain"
	"utmbot/internal/repository"
)

// ErrInvalidSlug is returned when a slug contains anything but
// lowercase latin letters, digits and underscores.
var ErrInvalidSlug = errors.New("invalid slug value")

// Category is one manageable catalog category: the id used in
// callbacks, the display name and the internal store key.
type Category struct {
	ID   string
	Name string
	Key  string
}

// Group is a sub-category shown on a group-selection screen
type Group struct {
	ID    string // group token used in callbacks ("publications", "spb", ...)
	Label string
	Key   string // catalog store key
}

// The ten categories are fixed and never extended at runtime.
var categories = []Category{
	{ID: "utm_source", Name: "📊 Источники трафика (utm_source)", Key: "source"},
	{ID: "utm_medium_publications", Name: "📣 Публикации (utm_medium)", Key: "medium_publications"},
	{ID: "utm_medium_mailings", Name: "📧 Рассылки (utm_medium)", Key: "medium_mailings"},
	{ID: "utm_medium_stories", Name: "📱 Сторисы (utm_medium)", Key: "medium_stories"},
	{ID: "utm_medium_channels", Name: "📡 Каналы (utm_medium)", Key: "medium_channels"},
	{ID: "utm_campaign_spb", Name: "📍 СПБ кампании", Key: "campaign_spb"},
	{ID: "utm_campaign_msk", Name: "🏙 МСК кампании", Key: "campaign_msk"},
	{ID: "utm_campaign_tr", Name: "✈️ Турция кампании", Key: "campaign_tr"},
	{ID: "utm_campaign_regions", Name: "🌍 Регионы кампании", Key: "campaign_regions"},
	{ID: "utm_campaign_foreign", Name: "🌐 Зарубежье кампании", Key: "campaign_foreign"},
}

var mediumGroups = []Group{
	{ID: "publications", Label: "📣 СММ (публикации)", Key: "medium_publications"},
	{ID: "mailings", Label: "📧 СММ (рассылка)", Key: "medium_mailings"},
	{ID: "stories", Label: "📱 СММ IG (истории)", Key: "medium_stories"},
	{ID: "channels", Label: "📡 СММ (каналы)", Key: "medium_channels"},
}

var campaignGroups = []Group{
	{ID: "spb", Label: "📍 Санкт-Петербург", Key: "campaign_spb"},
	{ID: "msk", Label: "🏙 Москва", Key: "campaign_msk"},
	{ID: "tr", Label: "✈️ Турция и зарубежье", Key: "campaign_tr"},
	{ID: "regions", Label: "🌍 Регионы России", Key: "campaign_regions"},
	{ID: "foreign", Label: "🌐 Зарубежные направления", Key: "campaign_foreign"},
}

// CatalogService exposes the tag catalog to the conversation flow and
// the management panel.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Categories returns all manageable categories in display order
func (s *CatalogService) Categories() []Category {
	return categories
}

// CategoryByID resolves a management-callback category id
func (s *CatalogService) CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// MediumGroups returns the utm_medium sub-categories
func (s *CatalogService) MediumGroups() []Group {
	return mediumGroups
}

// CampaignGroups returns the utm_campaign sub-categories
func (s *CatalogService) CampaignGroups() []Group {
	return campaignGroups
}

// MediumGroup resolves a medium group callback token
func (s *CatalogService) MediumGroup(id string) (Group, bool) {
	return findGroup(mediumGroups, id)
}

// CampaignGroup resolves a campaign group callback token
func (s *CatalogService) CampaignGroup(id string) (Group, bool) {
	return findGroup(campaignGroups, id)
}

func findGroup(groups []Group, id string) (Group, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// Sources returns the utm_source entries
func (s *CatalogService) Sources() ([]domain.CatalogEntry, error) {
	return s.catalog.List("source")
}

// Entries returns the entries of a category by store key
func (s *CatalogService) Entries(categoryKey string) ([]domain.CatalogEntry, error) {
	return s.catalog.List(categoryKey)
}

// AddEntry validates and stores a new tag. The slug must be well
// formed and unique within its category.
func (s *CatalogService) AddEntry(categoryKey, name, slug string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("tag name cannot be empty")
	}
	if !domain.ValidSlug(slug) {
		return ErrInvalidSlug
	}

	return s.catalog.Add(categoryKey, domain.CatalogEntry{Name: name, Slug: slug})
}

// DeleteEntry removes a tag from a category
func (s *CatalogService) DeleteEntry(categoryKey, slug string) error {
	return s.catalog.Delete(categoryKey, slug)
}
