package zanox

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Ad medium types accepted by the admediumtype filter.
const (
	AdMediumTypeHTML        = "html"
	AdMediumTypeScript      = "script"
	AdMediumTypeLookatMedia = "lookatMedia"
	AdMediumTypeImage       = "image"
	AdMediumTypeImageText   = "imageText"
	AdMediumTypeText        = "text"
)

// Ad medium purposes accepted by the purpose filter.
const (
	PurposeStartPage        = "startPage"
	PurposeProductDeeplink  = "productDeeplink"
	PurposeCategoryDeeplink = "categoryDeeplink"
	PurposeSearchDeeplink   = "searchDeeplink"
)

// Incentive types accepted by the incentiveType filter.
const (
	IncentiveTypeCoupons         = "coupons"
	IncentiveTypeSamples         = "samples"
	IncentiveTypeBargains        = "bargains"
	IncentiveTypeFreeProducts    = "freeProducts"
	IncentiveTypeNoShippingCosts = "noShippingCosts"
	IncentiveTypeLotteries       = "lotteries"
)

// Program application states accepted by the status filter.
const (
	ApplicationStatusOpen       = "open"
	ApplicationStatusConfirmed  = "confirmed"
	ApplicationStatusRejected   = "rejected"
	ApplicationStatusDeferred   = "deferred"
	ApplicationStatusWaiting    = "waiting"
	ApplicationStatusBlocked    = "blocked"
	ApplicationStatusTerminated = "terminated"
	ApplicationStatusCanceled   = "canceled"
	ApplicationStatusCalled     = "called"
	ApplicationStatusDeclined   = "declined"
	ApplicationStatusDeleted    = "deleted"
)

// Product partnership values; anything else is not sent.
const (
	ProductPartnershipAll       = "all"
	ProductPartnershipConfirmed = "confirmed"
)

// Program status values as reported by the API.
const (
	ProgramStatusActive   = "active"
	ProgramStatusInactive = "inactive"
)

// Ad space types and scopes as reported by the API.
const (
	AdSpaceTypeWebsite      = "website"
	AdSpaceTypeEmail        = "email"
	AdSpaceTypeSearchEngine = "searchengine"
	AdSpaceScopePrivate     = "private"
	AdSpaceScopeBusiness    = "business"
)

// Enumerations used to drop invalid filter values client-side.
var (
	AdMediumTypes = []string{
		AdMediumTypeHTML, AdMediumTypeScript, AdMediumTypeLookatMedia,
		AdMediumTypeImage, AdMediumTypeImageText, AdMediumTypeText,
	}
	AdMediumPurposes = []string{
		PurposeStartPage, PurposeProductDeeplink, PurposeCategoryDeeplink, PurposeSearchDeeplink,
	}
	IncentiveTypes = []string{
		IncentiveTypeCoupons, IncentiveTypeSamples, IncentiveTypeBargains,
		IncentiveTypeFreeProducts, IncentiveTypeNoShippingCosts, IncentiveTypeLotteries,
	}
	ApplicationStatuses = []string{
		ApplicationStatusOpen, ApplicationStatusConfirmed, ApplicationStatusRejected,
		ApplicationStatusDeferred, ApplicationStatusWaiting, ApplicationStatusBlocked,
		ApplicationStatusTerminated, ApplicationStatusCanceled, ApplicationStatusCalled,
		ApplicationStatusDeclined, ApplicationStatusDeleted,
	}
	ProductPartnerships = []string{ProductPartnershipAll, ProductPartnershipConfirmed}
)

// SearchTypeThreshold is the longest product query still searched as a phrase.
const SearchTypeThreshold = 25

// Product search types.
const (
	SearchTypePhrase     = "phrase"
	SearchTypeContextual = "contextual"
)

const startDateLayout = "2006-01-02"

func setString(values url.Values, key string, value *string) {
	if value != nil {
		values.Set(key, *value)
	}
}

func setInt(values url.Values, key string, value *int) {
	if value != nil {
		values.Set(key, strconv.Itoa(*value))
	}
}

func setBool(values url.Values, key string, value *bool) {
	if value != nil {
		values.Set(key, strconv.FormatBool(*value))
	}
}

func setEnum(values url.Values, key string, value *string, allowed []string) {
	if value != nil && slices.Contains(allowed, *value) {
		values.Set(key, *value)
	}
}

// ProgramQuery filters program listings. Partnership and region are
// forwarded as given and validated by the API.
type ProgramQuery struct {
	PageOptions

	Query       *string
	StartDate   *time.Time
	Region      *string
	Partnership *string
	HasProducts *bool
}

// Values implements Query.
func (q *ProgramQuery) Values(page, perPage int) url.Values {
	if q == nil {
		q = &ProgramQuery{}
	}

	values := q.PageOptions.Values(page, perPage)
	setString(values, "q", q.Query)

	if q.StartDate != nil {
		values.Set("startdate", q.StartDate.Format(startDateLayout))
	}

	setString(values, "region", q.Region)
	setString(values, "partnership", q.Partnership)
	setBool(values, "hasproducts", q.HasProducts)

	return values
}

// AdSpaceQuery pages through the caller's ad spaces.
type AdSpaceQuery struct {
	PageOptions
}

// Values implements Query.
func (q *AdSpaceQuery) Values(page, perPage int) url.Values {
	if q == nil {
		q = &AdSpaceQuery{}
	}

	return q.PageOptions.Values(page, perPage)
}

// AdMediumQuery filters ad media listings. AdMediumType and Purpose are
// dropped unless they name a known value.
type AdMediumQuery struct {
	PageOptions

	Program      *int
	Region       *string
	Format       *int
	AdMediumType *string
	Purpose      *string
	Partnership  *string
	Category     *int
	AdSpace      *int
}

// Values implements Query.
func (q *AdMediumQuery) Values(page, perPage int) url.Values {
	if q == nil {
		q = &AdMediumQuery{}
	}

	values := q.PageOptions.Values(page, perPage)
	setInt(values, "program", q.Program)
	setString(values, "region", q.Region)
	setInt(values, "format", q.Format)
	setEnum(values, "admediumtype", q.AdMediumType, AdMediumTypes)
	setEnum(values, "purpose", q.Purpose, AdMediumPurposes)
	setString(values, "partnership", q.Partnership)
	setInt(values, "category", q.Category)
	setInt(values, "adspace", q.AdSpace)

	return values
}

// ProductQuery filters product searches.
type ProductQuery struct {
	PageOptions

	Query              *string
	Region             *string
	MinPrice           *int
	MaxPrice           *int
	Programs           []int
	HasImages          *bool
	AdSpace            *int
	Partnership        *string
	EAN                *string
	MerchantCategories []string
}

// SearchType returns the search mode the API applies to query.
func SearchType(query string) string {
	if len(query) <= SearchTypeThreshold {
		return SearchTypePhrase
	}

	return SearchTypeContextual
}

// Values implements Query.
func (q *ProductQuery) Values(page, perPage int) url.Values {
	if q == nil {
		q = &ProductQuery{}
	}

	values := q.PageOptions.Values(page, perPage)

	if q.Query != nil {
		values.Set("q", *q.Query)
		values.Set("searchtype", SearchType(*q.Query))
	}

	setString(values, "region", q.Region)
	setInt(values, "minprice", q.MinPrice)
	setInt(values, "maxprice", q.MaxPrice)

	if len(q.Programs) > 0 {
		ids := make([]string, 0, len(q.Programs))
		for _, id := range q.Programs {
			ids = append(ids, strconv.Itoa(id))
		}

		values.Set("programs", strings.Join(ids, ","))
	}

	setBool(values, "hasimages", q.HasImages)
	setInt(values, "adspace", q.AdSpace)
	setEnum(values, "partnership", q.Partnership, ProductPartnerships)
	setString(values, "ean", q.EAN)

	for _, category := range q.MerchantCategories {
		values.Add("merchantcategory", category)
	}

	return values
}

// IncentiveQuery filters incentive and exclusive incentive listings.
type IncentiveQuery struct {
	PageOptions

	Program       *int
	AdSpace       *int
	IncentiveType *string
	Region        *string
}

// Values implements Query.
func (q *IncentiveQuery) Values(page, perPage int) url.Values {
	if q == nil {
		q = &IncentiveQuery{}
	}

	values := q.PageOptions.Values(page, perPage)
	setInt(values, "program", q.Program)
	setInt(values, "adspace", q.AdSpace)
	setEnum(values, "incentiveType", q.IncentiveType, IncentiveTypes)
	setString(values, "region", q.Region)

	return values
}

// ProgramApplicationQuery filters the caller's program applications.
type ProgramApplicationQuery struct {
	PageOptions

	Program *int
	AdSpace *int
	Status  *string
}

// Values implements Query.
func (q *ProgramApplicationQuery) Values(page, perPage int) url.Values {
	if q == nil {
		q = &ProgramApplicationQuery{}
	}

	values := q.PageOptions.Values(page, perPage)
	setInt(values, "program", q.Program)
	setInt(values, "adspace", q.AdSpace)
	setEnum(values, "status", q.Status, ApplicationStatuses)

	return values
}
