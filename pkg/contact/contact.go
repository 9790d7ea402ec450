package contact

import (
	"strings"

	"iqaama_backend/internal/model"
)

// Options are the fire-and-forget contact actions for a listing: a phone
// call URI and a WhatsApp handoff URL the client can open directly.
type Options struct {
	LandlordName string  `json:"landlord_name"`
	Phone        string  `json:"phone"`
	Rating       float64 `json:"rating"`
	CallURI      string  `json:"call_uri"`
	WhatsAppURI  string  `json:"whatsapp_uri"`
}

// OptionsFor builds the contact actions for a property's landlord.
func OptionsFor(p model.Property) Options {
	return Options{
		LandlordName: p.Landlord.Name,
		Phone:        p.Landlord.Phone,
		Rating:       p.Landlord.Rating,
		CallURI:      CallURI(p.Landlord.Phone),
		WhatsAppURI:  WhatsAppURI(p.Landlord.WhatsApp),
	}
}

// CallURI turns a display phone number into a dialable tel: URI.
func CallURI(phone string) string {
	return "tel:" + strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
}

// WhatsAppURI builds a wa.me link; WhatsApp wants the number with digits
// only, no plus sign or spaces.
func WhatsAppURI(handle string) string {
	var digits strings.Builder
	for _, r := range handle {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}
