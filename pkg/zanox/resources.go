package zanox

import (
	"encoding/json"
	"fmt"
)

// Program is an advertiser's affiliate program. The API embeds programs
// in other resources in a short form that only carries ID and name.
type Program struct {
	ID                  ID         `json:"@id"                           yaml:"id"`
	Name                string     `json:"name"                          yaml:"name"`
	AdRank              Number     `json:"adrank,omitempty"              yaml:"adrank,omitempty"`
	ApplicationRequired Flag       `json:"applicationRequired,omitempty" yaml:"application_required,omitempty"`
	Description         string     `json:"description,omitempty"         yaml:"description,omitempty"`
	DescriptionLocal    *string    `json:"descriptionLocal,omitempty"    yaml:"description_local,omitempty"`
	Products            Count      `json:"products,omitempty"            yaml:"products,omitempty"`
	Vertical            *Vertical  `json:"vertical,omitempty"            yaml:"vertical,omitempty"`
	Regions             Regions    `json:"regions,omitempty"             yaml:"regions,omitempty"`
	Categories          Categories `json:"categories,omitempty"          yaml:"categories,omitempty"`
	StartDate           *Timestamp `json:"startDate,omitempty"           yaml:"start_date,omitempty"`
	URL                 string     `json:"url,omitempty"                 yaml:"url,omitempty"`
	Image               string     `json:"image,omitempty"               yaml:"image,omitempty"`
	Currency            string     `json:"currency,omitempty"            yaml:"currency,omitempty"`
	Status              string     `json:"status,omitempty"              yaml:"status,omitempty"`
	Terms               *string    `json:"terms,omitempty"               yaml:"terms,omitempty"`
	TermsURL            *string    `json:"termsUrl,omitempty"            yaml:"terms_url,omitempty"`
	Policies            Policies   `json:"policies,omitempty"            yaml:"policies,omitempty"`
	ReturnTimeLeads     *Count     `json:"returnTimeLeads,omitempty"     yaml:"return_time_leads,omitempty"`
	ReturnTimeSales     *Count     `json:"returnTimeSales,omitempty"     yaml:"return_time_sales,omitempty"`
}

// Identifier returns the numeric identifier.
func (p Program) Identifier() int { return int(p.ID) }

// IsShort reports whether only the ID and name were sent.
func (p Program) IsShort() bool { return p.StartDate == nil }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Program) UnmarshalJSON(data []byte) error {
	obj, err := decodeFields("Program", data)
	if err != nil {
		return err
	}

	if obj.has("$") {
		short, err := decodeShort("Program", obj)
		if err != nil {
			return err
		}

		*p = Program{ID: short.ID, Name: short.Name}

		return nil
	}

	type plain Program

	return decodeResource(data, "Program", (*plain)(p),
		"@id", "name", "adrank", "applicationRequired", "description", "products",
		"startDate", "url", "image", "currency", "status")
}

// AdSpace is a publisher's placement: a website, newsletter or search listing.
type AdSpace struct {
	ID          ID         `json:"@id"                   yaml:"id"`
	Name        string     `json:"name"                  yaml:"name"`
	URL         string     `json:"url,omitempty"         yaml:"url,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	AdSpaceType string     `json:"adspaceType,omitempty" yaml:"adspace_type,omitempty"`
	Visitors    Count      `json:"visitors,omitempty"    yaml:"visitors,omitempty"`
	Impressions Count      `json:"impressions,omitempty" yaml:"impressions,omitempty"`
	Scope       *string    `json:"scope,omitempty"       yaml:"scope,omitempty"`
	Regions     Regions    `json:"regions,omitempty"     yaml:"regions,omitempty"`
	Categories  Categories `json:"categories,omitempty"  yaml:"categories,omitempty"`
	Language    string     `json:"language,omitempty"    yaml:"language,omitempty"`
	CheckNumber Count      `json:"checkNumber,omitempty" yaml:"check_number,omitempty"`
}

// Identifier returns the numeric identifier.
func (a AdSpace) Identifier() int { return int(a.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (a *AdSpace) UnmarshalJSON(data []byte) error {
	obj, err := decodeFields("AdSpace", data)
	if err != nil {
		return err
	}

	if obj.has("$") {
		short, err := decodeShort("AdSpace", obj)
		if err != nil {
			return err
		}

		*a = AdSpace{ID: short.ID, Name: short.Name}

		return nil
	}

	type plain AdSpace

	return decodeResource(data, "AdSpace", (*plain)(a),
		"@id", "name", "url", "description", "adspaceType", "visitors", "impressions",
		"language", "checkNumber")
}

// AdMedium is a banner, text link or other creative offered by a program.
type AdMedium struct {
	ID            ID            `json:"@id"                     yaml:"id"`
	Name          string        `json:"name"                    yaml:"name"`
	AdRank        Number        `json:"adrank"                  yaml:"adrank"`
	AdMediumType  string        `json:"admediumType"            yaml:"admedium_type"`
	Program       Program       `json:"program"                 yaml:"program"`
	Title         *string       `json:"title,omitempty"         yaml:"title,omitempty"`
	Height        *Count        `json:"height,omitempty"        yaml:"height,omitempty"`
	Width         *Count        `json:"width,omitempty"         yaml:"width,omitempty"`
	Format        *Format       `json:"format,omitempty"        yaml:"format,omitempty"`
	Code          *string       `json:"code,omitempty"          yaml:"code,omitempty"`
	Description   *string       `json:"description,omitempty"   yaml:"description,omitempty"`
	Instruction   *string       `json:"instruction,omitempty"   yaml:"instruction,omitempty"`
	Purpose       *string       `json:"purpose,omitempty"       yaml:"purpose,omitempty"`
	Category      *Category     `json:"category,omitempty"      yaml:"category,omitempty"`
	Group         *string       `json:"group,omitempty"         yaml:"group,omitempty"`
	Tags          *string       `json:"tags,omitempty"          yaml:"tags,omitempty"`
	TrackingLinks TrackingLinks `json:"trackingLinks,omitempty" yaml:"tracking_links,omitempty"`
}

// Identifier returns the numeric identifier.
func (a AdMedium) Identifier() int { return int(a.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (a *AdMedium) UnmarshalJSON(data []byte) error {
	type plain AdMedium

	return decodeResource(data, "AdMedium", (*plain)(a), "@id", "name", "adrank", "admediumType", "program")
}

// ProductImage holds the image URLs of a product in three sizes.
type ProductImage struct {
	Small  *string `json:"small,omitempty"  yaml:"small,omitempty"`
	Medium *string `json:"medium,omitempty" yaml:"medium,omitempty"`
	Large  *string `json:"large,omitempty"  yaml:"large,omitempty"`
}

// Product is an item from an advertiser's product feed. Product
// identifiers are opaque strings.
type Product struct {
	ID                string        `json:"@id"                         yaml:"id"`
	Name              string        `json:"name"                        yaml:"name"`
	Modified          Timestamp     `json:"modified"                    yaml:"modified"`
	Program           Program       `json:"program"                     yaml:"program"`
	Price             Number        `json:"price"                       yaml:"price"`
	Currency          string        `json:"currency"                    yaml:"currency"`
	TrackingLinks     TrackingLinks `json:"trackingLinks,omitempty"     yaml:"tracking_links,omitempty"`
	Description       *string       `json:"description,omitempty"       yaml:"description,omitempty"`
	DescriptionLong   *string       `json:"descriptionLong,omitempty"   yaml:"description_long,omitempty"`
	Manufacturer      *string       `json:"manufacturer,omitempty"      yaml:"manufacturer,omitempty"`
	EAN               *string       `json:"ean,omitempty"               yaml:"ean,omitempty"`
	DeliveryTime      *string       `json:"deliveryTime,omitempty"      yaml:"delivery_time,omitempty"`
	Terms             *string       `json:"terms,omitempty"             yaml:"terms,omitempty"`
	Category          *Category     `json:"category,omitempty"          yaml:"category,omitempty"`
	Image             *ProductImage `json:"image,omitempty"             yaml:"image,omitempty"`
	PriceOld          *Number       `json:"priceOld,omitempty"          yaml:"price_old,omitempty"`
	ShippingCosts     *Number       `json:"shippingCosts,omitempty"     yaml:"shipping_costs,omitempty"`
	Shipping          *Number       `json:"shipping,omitempty"          yaml:"shipping,omitempty"`
	MerchantCategory  *string       `json:"merchantCategory,omitempty"  yaml:"merchant_category,omitempty"`
	MerchantProductID *string       `json:"merchantProductId,omitempty" yaml:"merchant_product_id,omitempty"`
}

// Identifier returns the product identifier.
func (p Product) Identifier() string { return p.ID }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product

	return decodeResource(data, "Product", (*plain)(p), "@id", "name", "modified", "program", "price", "currency")
}

// Incentive is a voucher, sample or other customer incentive. Exclusive
// incentives are only offered to selected publishers.
type Incentive struct {
	ID                 ID         `json:"@id"                          yaml:"id"`
	Name               string     `json:"name"                         yaml:"name"`
	Program            Program    `json:"program"                      yaml:"program"`
	AdMedium           AdMedium   `json:"-"                            yaml:"admedium"`
	IncentiveType      string     `json:"incentiveType"                yaml:"incentive_type"`
	Regions            Regions    `json:"regions,omitempty"            yaml:"regions,omitempty"`
	CreateDate         Timestamp  `json:"createDate"                   yaml:"create_date"`
	ModifiedDate       Timestamp  `json:"modifiedDate"                 yaml:"modified_date"`
	StartDate          Timestamp  `json:"startDate"                    yaml:"start_date"`
	EndDate            *Timestamp `json:"endDate,omitempty"            yaml:"end_date,omitempty"`
	InfoForPublisher   *string    `json:"info4publisher,omitempty"     yaml:"info_for_publisher,omitempty"`
	InfoForCustomer    string     `json:"info4customer"                yaml:"info_for_customer"`
	CouponCode         *string    `json:"couponCode,omitempty"         yaml:"coupon_code,omitempty"`
	Total              *Number    `json:"total,omitempty"              yaml:"total,omitempty"`
	Currency           *string    `json:"currency,omitempty"           yaml:"currency,omitempty"`
	Percentage         *Number    `json:"percentage,omitempty"         yaml:"percentage,omitempty"`
	Restrictions       *string    `json:"restrictions,omitempty"       yaml:"restrictions,omitempty"`
	NewCustomerOnly    Flag       `json:"newCustomerOnly"              yaml:"new_customer_only"`
	MinimumBasketValue *Number    `json:"minimumBasketValue,omitempty" yaml:"minimum_basket_value,omitempty"`
	Prizes             Prizes     `json:"prizes,omitempty"             yaml:"prizes,omitempty"`
	Exclusive          bool       `json:"exclusive"                    yaml:"exclusive"`
}

// Identifier returns the numeric identifier.
func (i Incentive) Identifier() int { return int(i.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (i *Incentive) UnmarshalJSON(data []byte) error {
	type plain Incentive

	err := decodeResource(data, "Incentive", (*plain)(i),
		"@id", "name", "program", "admedia", "incentiveType", "createDate", "modifiedDate",
		"startDate", "info4customer", "newCustomerOnly")
	if err != nil {
		return err
	}

	obj, err := decodeFields("Incentive", data)
	if err != nil {
		return err
	}

	admedia, err := decodeFields("Incentive", obj["admedia"])
	if err != nil {
		return err
	}

	if !admedia.has("admediumItem") {
		return &ParseError{Resource: "Incentive", Missing: []string{"admedia.admediumItem"}}
	}

	media, err := decodeKey[AdMedium](admedia, "admediumItem")
	if err != nil {
		return err
	}

	if len(media) == 0 {
		return &ParseError{Resource: "Incentive", Missing: []string{"admedia.admediumItem"}}
	}

	i.AdMedium = media[0]

	return nil
}

// MarshalJSON renders the ad medium under its own key.
func (i Incentive) MarshalJSON() ([]byte, error) {
	type plain Incentive

	out, err := json.Marshal(struct {
		plain

		AdMedium AdMedium `json:"admedium"`
	}{plain: plain(i), AdMedium: i.AdMedium})
	if err != nil {
		return nil, fmt.Errorf("encoding incentive: %w", err)
	}

	return out, nil
}

// ProgramApplication is a publisher's membership request for a program on
// behalf of one ad space.
type ProgramApplication struct {
	ID                ID         `json:"@id"                         yaml:"id"`
	Program           Program    `json:"program"                     yaml:"program"`
	AdSpace           AdSpace    `json:"adspace"                     yaml:"adspace"`
	Status            string     `json:"status"                      yaml:"status"`
	CreateDate        Timestamp  `json:"createDate"                  yaml:"create_date"`
	AllowTPV          Flag       `json:"allowTpv"                    yaml:"allow_tpv"`
	ApprovedDate      *Timestamp `json:"approvedDate,omitempty"      yaml:"approved_date,omitempty"`
	PublisherComment  *string    `json:"publisherComment,omitempty"  yaml:"publisher_comment,omitempty"`
	AdvertiserComment *string    `json:"advertiserComment,omitempty" yaml:"advertiser_comment,omitempty"`
}

// Identifier returns the numeric identifier.
func (p ProgramApplication) Identifier() int { return int(p.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *ProgramApplication) UnmarshalJSON(data []byte) error {
	type plain ProgramApplication

	return decodeResource(data, "ProgramApplication", (*plain)(p),
		"@id", "program", "adspace", "status", "createDate", "allowTpv")
}

// Profile is the account profile of the authenticated publisher.
type Profile struct {
	ID           ID      `json:"@id"                yaml:"id"`
	AdRank       Number  `json:"adrank"             yaml:"adrank"`
	FirstName    string  `json:"firstName"          yaml:"first_name"`
	LastName     string  `json:"lastName"           yaml:"last_name"`
	Email        string  `json:"email"              yaml:"email"`
	Country      string  `json:"country"            yaml:"country"`
	Street1      string  `json:"street1"            yaml:"street1"`
	City         string  `json:"city"               yaml:"city"`
	Zipcode      string  `json:"zipcode"            yaml:"zipcode"`
	LoginName    string  `json:"loginName"          yaml:"login_name"`
	UserName     string  `json:"userName"           yaml:"user_name"`
	IsAdvertiser Flag    `json:"isAdvertiser"       yaml:"is_advertiser"`
	IsSublogin   Flag    `json:"isSublogin"         yaml:"is_sublogin"`
	Title        *string `json:"title,omitempty"    yaml:"title,omitempty"`
	Currency     *string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Language     *string `json:"language,omitempty" yaml:"language,omitempty"`
	Fax          *string `json:"fax,omitempty"      yaml:"fax,omitempty"`
	Mobile       *string `json:"mobile,omitempty"   yaml:"mobile,omitempty"`
	Phone        *string `json:"phone,omitempty"    yaml:"phone,omitempty"`
	Street2      *string `json:"street2,omitempty"  yaml:"street2,omitempty"`
	Company      *string `json:"company,omitempty"  yaml:"company,omitempty"`
}

// Identifier returns the numeric identifier.
func (p Profile) Identifier() int { return int(p.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile

	return decodeResource(data, "Profile", (*plain)(p),
		"@id", "adrank", "firstName", "lastName", "email", "country", "street1", "city",
		"zipcode", "loginName", "userName", "isAdvertiser", "isSublogin")
}

type shortForm struct {
	ID   ID     `json:"@id"`
	Name string `json:"$"`
}

func decodeShort(resource string, obj fields) (shortForm, error) {
	var short shortForm

	err := obj.require(resource, "@id")
	if err != nil {
		return short, err
	}

	err = json.Unmarshal(obj["@id"], &short.ID)
	if err != nil {
		return short, fmt.Errorf("decoding %s: %w", resource, err)
	}

	err = json.Unmarshal(obj["$"], &short.Name)
	if err != nil {
		return short, fmt.Errorf("decoding %s: %w", resource, err)
	}

	return short, nil
}
