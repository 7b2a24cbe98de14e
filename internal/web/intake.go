package web

import (
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/format"
)

// State is an entry in the fixed state list on the intake form.
type State struct {
	Name string
	Abbr string
}

// States is the fixed 50-state list for the intake form's address section.
var States = []State{
	{"alabama", "al"}, {"alaska", "ak"}, {"arizona", "az"}, {"arkansas", "ar"},
	{"california", "ca"}, {"colorado", "co"}, {"connecticut", "ct"}, {"delaware", "de"},
	{"florida", "fl"}, {"georgia", "ga"}, {"hawaii", "hi"}, {"idaho", "id"},
	{"illinois", "il"}, {"indiana", "in"}, {"iowa", "ia"}, {"kansas", "ks"},
	{"kentucky", "ky"}, {"louisiana", "la"}, {"maine", "me"}, {"maryland", "md"},
	{"massachusetts", "ma"}, {"michigan", "mi"}, {"minnesota", "mn"}, {"mississippi", "ms"},
	{"missouri", "mo"}, {"montana", "mt"}, {"nebraska", "ne"}, {"nevada", "nv"},
	{"new hampshire", "nh"}, {"new jersey", "nj"}, {"new mexico", "nm"}, {"new york", "ny"},
	{"north carolina", "nc"}, {"north dakota", "nd"}, {"ohio", "oh"}, {"oklahoma", "ok"},
	{"oregon", "or"}, {"pennsylvania", "pa"}, {"rhode island", "ri"}, {"south carolina", "sc"},
	{"south dakota", "sd"}, {"tennessee", "tn"}, {"texas", "tx"}, {"utah", "ut"},
	{"vermont", "vt"}, {"virginia", "va"}, {"washington", "wa"}, {"west virginia", "wv"},
	{"wisconsin", "wi"}, {"wyoming", "wy"},
}

func knownState(abbr string) bool {
	for _, s := range States {
		if s.Abbr == abbr {
			return true
		}
	}
	return false
}

// intake holds the reservation intake form fields after mask
// normalization.
type intake struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	HomeAddress    string
	State          string
	City           string
	Zip            string
	CardNumber     string
	CardExpiration string
	CardPIN        string
}

// intakeFromForm reads the intake fields from a request, running every
// masked field through its formatter so stored-and-redisplayed values
// always match what the client-side masks produce.
func intakeFromForm(r *http.Request) intake {
	return intake{
		FirstName:      r.FormValue("first_name"),
		LastName:       r.FormValue("last_name"),
		Email:          r.FormValue("email"),
		Phone:          format.Phone(r.FormValue("phone")),
		HomeAddress:    r.FormValue("home_address"),
		State:          r.FormValue("state"),
		City:           r.FormValue("city"),
		Zip:            format.Zip(r.FormValue("zip")),
		CardNumber:     format.CardNumber(r.FormValue("card_number")),
		CardExpiration: format.Expiration(r.FormValue("card_expiration")),
		CardPIN:        format.PIN(r.FormValue("card_pin")),
	}
}

// validate checks the intake fields, returning a message per failing
// field. An empty map means the form is acceptable.
func (f intake) validate() map[string]string {
	errs := make(map[string]string)

	if f.FirstName == "" {
		errs["first_name"] = "Enter a first name"
	}
	if f.LastName == "" {
		errs["last_name"] = "Enter a last name"
	}
	if !validEmail(f.Email) {
		errs["email"] = "Enter a valid email address"
	}
	if len(f.Phone) < 12 {
		errs["phone"] = "Please enter a valid phone number"
	}
	if f.HomeAddress == "" {
		errs["home_address"] = "Enter a home address"
	}
	if !knownState(f.State) {
		errs["state"] = "Select a state"
	}
	if f.City == "" {
		errs["city"] = "Enter a city"
	}
	if len(f.Zip) < 2 {
		errs["zip"] = "Enter a ZIP code"
	}
	if len(f.CardNumber) < 14 {
		errs["card_number"] = "Please enter a card number"
	}
	if len(f.CardExpiration) < 5 {
		errs["card_expiration"] = "Enter a valid date"
	}
	if len(f.CardPIN) < 3 {
		errs["card_pin"] = "Enter a card pin"
	}

	return errs
}
