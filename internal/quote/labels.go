package quote

// LabelID identifies one translatable string in the rendered email.
type LabelID string

const (
	// Customer-details field labels (overridable on the detailed endpoint).
	LabelName           LabelID = "name"
	LabelEmail          LabelID = "email"
	LabelInvoiceContact LabelID = "invoice_contact"
	LabelStreet         LabelID = "street"
	LabelCity           LabelID = "city"
	LabelProvince       LabelID = "province"
	LabelPostalCode     LabelID = "postal_code"
	LabelCountry        LabelID = "country"
	LabelLocation       LabelID = "location"
	LabelContact        LabelID = "contact"
	LabelDelivery       LabelID = "delivery"
	LabelNotes          LabelID = "notes"

	// Static labels (never overridable).
	labelGreeting      LabelID = "greeting"
	labelIntro         LabelID = "intro"
	labelReminderTitle LabelID = "reminder_title"
	labelReminderBody  LabelID = "reminder_body"
	labelCartItems     LabelID = "cart_items"
	labelProduct       LabelID = "product"
	labelQuantity      LabelID = "quantity"
	labelPrice         LabelID = "price"
	labelSubtotal      LabelID = "subtotal"
	labelContactUs     LabelID = "contact_us"
	labelWebsite       LabelID = "website"
	labelFooterEmail   LabelID = "footer_email"
	labelPhone         LabelID = "phone"
	labelSubjectAdmin  LabelID = "subject_admin"
	labelSubjectUser   LabelID = "subject_user"
)

// labelText holds the built-in [english, french] pair for every label.
var labelText = map[LabelID][2]string{
	LabelName:           {"Name", "Nom"},
	LabelEmail:          {"Email", "Courriel"},
	LabelInvoiceContact: {"Contact for Invoicing", "Contact pour la facturation"},
	LabelStreet:         {"Street Address", "Adresse"},
	LabelCity:           {"City", "Ville"},
	LabelProvince:       {"Province/State", "Province/État"},
	LabelPostalCode:     {"Postal Code", "Code postal"},
	LabelCountry:        {"Country", "Pays"},
	LabelLocation:       {"Location", "Emplacement"},
	LabelContact:        {"Preferred Contact", "Moyen de contact préféré"},
	LabelDelivery:       {"Delivery Options", "Options de livraison"},
	LabelNotes:          {"Notes / Instructions", "Notes / Instructions"},

	labelGreeting: {"Thank you for your order!", "Merci pour votre commande!"},
	labelIntro: {
		"We’ve received your details and will now calculate the most efficient and cost-effective shipping option to make sure your products arrive safely.<br>Our team will get back to you within the next hours with a complete quote including shipping costs and delivery timeline.",
		"Nous avons reçu vos informations et allons maintenant calculer l'option d'expédition la plus efficace et la plus rentable afin que vos produits arrivent en toute sécurité.<br>Notre équipe vous recontactera dans les prochaines heures avec un devis complet incluant les frais de livraison et le délai.",
	},
	labelReminderTitle: {"Reminder:", "Rappel :"},
	labelReminderBody: {
		"It’s never too late to modify or clarify your order. If you’d like to adjust anything, simply reply to this email. You can also reach us directly at",
		"Il n'est jamais trop tard pour modifier ou clarifier votre commande. Si vous souhaitez apporter des modifications, répondez simplement à cet e-mail. Vous pouvez également nous contacter directement au",
	},
	labelCartItems:    {"Cart Items", "Articles du panier"},
	labelProduct:      {"Product", "Produit"},
	labelQuantity:     {"Quantity", "Quantité"},
	labelPrice:        {"Price", "Prix"},
	labelSubtotal:     {"Subtotal", "Sous-total"},
	labelContactUs:    {"Contact Us", "Contactez-nous"},
	labelWebsite:      {"Website", "Site Web"},
	labelFooterEmail:  {"Email", "Courriel"},
	labelPhone:        {"Phone", "Téléphone"},
	labelSubjectAdmin: {"New Quote Request from", "Nouvelle demande de devis de"},
	labelSubjectUser:  {"Quote Request Received -", "Demande de devis reçue -"},
}

// text returns the built-in label for the given language. Any language other
// than "fr" selects English.
func text(language string, id LabelID) string {
	pair := labelText[id]
	if language == "fr" {
		return pair[1]
	}
	return pair[0]
}

// fieldLabel resolves a customer-details field label.
//
// When overrides are allowed (detailed endpoint), a non-empty caller override
// wins; otherwise the English default is used for that field regardless of the
// language selector. That asymmetry is long-standing observable behavior of
// the detailed endpoint — the storefront sends pre-translated label_* fields
// and expects English only as the fallback.
//
// When overrides are not allowed (simple endpoint), the language table applies.
func fieldLabel(language string, id LabelID, overrides map[LabelID]string, allowOverrides bool) string {
	if allowOverrides {
		if v := overrides[id]; v != "" {
			return v
		}
		return labelText[id][0]
	}
	return text(language, id)
}
