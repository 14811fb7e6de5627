package buyer

import "strings"

type City string

const (
	CityChandigarh City = "Chandigarh"
	CityMohali     City = "Mohali"
	CityZirakpur   City = "Zirakpur"
	CityPanchkula  City = "Panchkula"
	CityOther      City = "Other"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "Apartment"
	PropertyVilla     PropertyType = "Villa"
	PropertyPlot      PropertyType = "Plot"
	PropertyOffice    PropertyType = "Office"
	PropertyRetail    PropertyType = "Retail"
)

type BHK string

const (
	BHKStudio BHK = "Studio"
	BHKOne    BHK = "One"
	BHKTwo    BHK = "Two"
	BHKThree  BHK = "Three"
	BHKFour   BHK = "Four"
)

type Purpose string

const (
	PurposeBuy  Purpose = "Buy"
	PurposeRent Purpose = "Rent"
)

type Timeline string

const (
	TimelineZeroToThree Timeline = "ZeroToThree"
	TimelineThreeToSix  Timeline = "ThreeToSix"
	TimelineMoreThanSix Timeline = "MoreThanSix"
	TimelineExploring   Timeline = "Exploring"
)

type Source string

const (
	SourceWebsite  Source = "Website"
	SourceReferral Source = "Referral"
	SourceWalkIn   Source = "WalkIn"
	SourceCall     Source = "Call"
	SourceOther    Source = "Other"
)

type Status string

const (
	StatusNew         Status = "New"
	StatusQualified   Status = "Qualified"
	StatusContacted   Status = "Contacted"
	StatusVisited     Status = "Visited"
	StatusNegotiation Status = "Negotiation"
	StatusConverted   Status = "Converted"
	StatusDropped     Status = "Dropped"
)

// ===============================
// Code / label tables
// ===============================

type option struct {
	code  string
	label string
}

var (
	cityOptions = []option{
		{"Chandigarh", "Chandigarh"},
		{"Mohali", "Mohali"},
		{"Zirakpur", "Zirakpur"},
		{"Panchkula", "Panchkula"},
		{"Other", "Other"},
	}
	propertyTypeOptions = []option{
		{"Apartment", "Apartment"},
		{"Villa", "Villa"},
		{"Plot", "Plot"},
		{"Office", "Office"},
		{"Retail", "Retail"},
	}
	bhkOptions = []option{
		{"Studio", "Studio"},
		{"One", "1 BHK"},
		{"Two", "2 BHK"},
		{"Three", "3 BHK"},
		{"Four", "4 BHK"},
	}
	purposeOptions = []option{
		{"Buy", "Buy"},
		{"Rent", "Rent"},
	}
	timelineOptions = []option{
		{"ZeroToThree", "0-3 months"},
		{"ThreeToSix", "3-6 months"},
		{"MoreThanSix", ">6 months"},
		{"Exploring", "Exploring"},
	}
	sourceOptions = []option{
		{"Website", "Website"},
		{"Referral", "Referral"},
		{"WalkIn", "Walk-in"},
		{"Call", "Call"},
		{"Other", "Other"},
	}
	statusOptions = []option{
		{"New", "New"},
		{"Qualified", "Qualified"},
		{"Contacted", "Contacted"},
		{"Visited", "Visited"},
		{"Negotiation", "Negotiation"},
		{"Converted", "Converted"},
		{"Dropped", "Dropped"},
	}
)

func hasCode(opts []option, code string) bool {
	for _, o := range opts {
		if o.code == code {
			return true
		}
	}
	return false
}

func labelOf(opts []option, code string) string {
	for _, o := range opts {
		if o.code == code {
			return o.label
		}
	}
	return code
}

// codeOf resolves a CSV cell that may hold either a code or its label.
// Unknown input is returned unchanged so validation can report it.
func codeOf(opts []option, s string) string {
	for _, o := range opts {
		if o.code == s {
			return s
		}
	}
	for _, o := range opts {
		if strings.EqualFold(o.label, s) {
			return o.code
		}
	}
	return s
}

func (v City) Valid() bool         { return hasCode(cityOptions, string(v)) }
func (v PropertyType) Valid() bool { return hasCode(propertyTypeOptions, string(v)) }
func (v BHK) Valid() bool          { return hasCode(bhkOptions, string(v)) }
func (v Purpose) Valid() bool      { return hasCode(purposeOptions, string(v)) }
func (v Timeline) Valid() bool     { return hasCode(timelineOptions, string(v)) }
func (v Source) Valid() bool       { return hasCode(sourceOptions, string(v)) }
func (v Status) Valid() bool       { return hasCode(statusOptions, string(v)) }

func (v City) Label() string         { return labelOf(cityOptions, string(v)) }
func (v PropertyType) Label() string { return labelOf(propertyTypeOptions, string(v)) }
func (v BHK) Label() string          { return labelOf(bhkOptions, string(v)) }
func (v Purpose) Label() string      { return labelOf(purposeOptions, string(v)) }
func (v Timeline) Label() string     { return labelOf(timelineOptions, string(v)) }
func (v Source) Label() string       { return labelOf(sourceOptions, string(v)) }
func (v Status) Label() string       { return labelOf(statusOptions, string(v)) }

// IsResidential reports whether a bhk value is required for the type.
func (v PropertyType) IsResidential() bool {
	return v == PropertyApartment || v == PropertyVilla
}
