package quote

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// Branding holds the store identity injected into the email chrome. Values
// come from configuration so the service can front more than one storefront.
type Branding struct {
	StoreName    string
	LogoURL      string
	WebsiteURL   string
	ContactEmail string
	ContactPhone string
	InstagramURL string
}

// RenderedEmail is the assembled document; subject lines are built separately
// per recipient by the Service.
type RenderedEmail struct {
	HTML string
}

// escapeHTML escapes the five characters that matter in element and attribute
// context: & < > " '. Every piece of user-supplied text goes through this
// before insertion, and always before any other substitution so inserted
// markup (like <br> in notes) survives.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}

// formatQuantity renders the numeric quantity the detailed endpoint shows.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render assembles the full HTML document: header, greeting and reminder,
// items table (with subtotal row when opts.IncludeSubtotal), customer-details
// block, optional notes block, and footer. Block order is fixed.
func Render(req Request, items []LineItem, opts Options, b Branding) RenderedEmail {
	lang := req.Language
	overrides := req.labelOverrides()

	var doc strings.Builder

	doc.WriteString(`<div style="font-family: Arial, sans-serif; color: #333; background:#f7f7f7;">
  <div style="max-width:800px;margin:0 auto;background:#fff;border-radius:8px;overflow:hidden;box-shadow:0 2px 6px rgba(0,0,0,0.1);">
`)

	// Header
	fmt.Fprintf(&doc, `    <div style="background:#82b517;color:#fff;padding:10px 20px;text-align:left;">
      <img src="%s" alt="%s" style="height: 80px; width: 80px;">
    </div>
`, b.LogoURL, escapeHTML(b.StoreName))

	// Body
	fmt.Fprintf(&doc, `    <div style="padding: 10px 25px;">
      <h2 style="font-size: 30px; font-weight: 600; color: #4b4a4a;">%s</h2>
      <p style="font-size:16px; line-height: 26px; color: #4b4a4a; margin:0px; margin-bottom: 15px;">%s</p>
      <p style="font-size:16px; line-height: 26px; color: #4b4a4a; margin:0px;">
        <b>%s</b> %s
        <a href="tel:%s" style="font-size:16px; color: #82b517; line-height: 24px; text-decoration: none;"> %s</a>.
      </p>
    </div>
`,
		text(lang, labelGreeting),
		text(lang, labelIntro),
		text(lang, labelReminderTitle),
		text(lang, labelReminderBody),
		telHref(b.ContactPhone),
		escapeHTML(b.ContactPhone),
	)

	// Cart items table
	fmt.Fprintf(&doc, `    <div style="padding:10px 25px;">
      <h3 style="font-size:18px; color:#444;">%s</h3>
      <table style="border-collapse:collapse;width:100%%;margin-top:10px;font-size:14px;">
        <thead>
          <tr>
            <th style="border:1px solid #ddd; padding:10px; background:#231709;text-align:left; color: #fff; font-size:17px; font-weight: 500;">%s</th>
            <th style="border:1px solid #ddd; padding:10px; background:#231709;text-align:center; color: #fff; font-size:17px; font-weight: 500;">%s</th>
            <th style="border:1px solid #ddd; padding:10px; background:#231709;text-align:right; color: #fff; font-size:17px; font-weight: 500;">%s</th>
          </tr>
        </thead>
        <tbody>
`,
		text(lang, labelCartItems),
		text(lang, labelProduct),
		text(lang, labelQuantity),
		text(lang, labelPrice),
	)

	for _, it := range items {
		doc.WriteString(renderItemRow(it, opts))
	}

	if opts.IncludeSubtotal {
		fmt.Fprintf(&doc, `          <tr>
            <td colspan="2" style="border:1px solid #ddd; padding:8px; text-align:right; font-weight:bold; font-size:16px; color: #231709;">%s</td>
            <td style="border:1px solid #ddd; padding:8px; text-align:right; font-weight:bold; font-size:18px; color: #231709;">$%s</td>
          </tr>
`, text(lang, labelSubtotal), Subtotal(items).StringFixed(2))
	}

	doc.WriteString(`        </tbody>
      </table>
    </div>
`)

	// Customer details
	doc.WriteString(`    <div style="padding:25px;">
      <div style="background-color: #fafafa; border: 1px solid #ddd; padding:25px;">
        <p style="font-size:15px; margin:0px; line-height: 28px; color: #4b4a4a;">
`)
	details := []struct {
		id    LabelID
		value string
	}{
		{LabelName, req.Name},
		{LabelEmail, req.Email},
		{LabelInvoiceContact, req.InvoiceContact},
		{LabelStreet, req.Street},
		{LabelCity, req.City},
		{LabelProvince, req.Province},
		{LabelPostalCode, req.PostalCode},
		{LabelCountry, req.Country},
		{LabelLocation, req.Location},
		{LabelContact, req.PreferredContact},
		{LabelDelivery, req.PreferredDelivery},
	}
	for _, d := range details {
		label := fieldLabel(lang, d.id, overrides, opts.AllowLabelOverrides)
		fmt.Fprintf(&doc, "          <strong>%s:</strong> %s<br>\n",
			escapeHTML(label), escapeHTML(d.value))
	}
	doc.WriteString(`        </p>
      </div>
`)

	// Notes (omitted entirely when empty)
	if req.Notes != "" {
		notes := strings.ReplaceAll(escapeHTML(req.Notes), "\n", "<br>")
		fmt.Fprintf(&doc, `      <div style="margin:20px 0;">
        <h3 style="font-size:16px;margin-bottom:8px;color:#444;">%s</h3>
        <p style="background:#fafafa;padding:12px;border-left:4px solid #82b517;border-radius:4px;font-size:14px;line-height:1.5;">%s</p>
      </div>
`, escapeHTML(fieldLabel(lang, LabelNotes, overrides, opts.AllowLabelOverrides)), notes)
	}
	doc.WriteString(`    </div>
`)

	// Footer
	fmt.Fprintf(&doc, `    <div style="background: #231709; padding:15px; text-align:left;">
      <table style="width: 100%%;">
        <tr>
          <td style="width: 20%%;">
            <img src="%s" alt="%s" style="height: 90px; width: 90px;">
          </td>
          <td style="padding: 20px; width: 70%%;">
            <h4 style="font-size:18px; line-height: 28px; font-weight: 600; color:#fff; margin: 0;">%s</h4>
            <a href="%s" style="font-size:16px; line-height: 24px; color:#fff; text-decoration: none;">%s: %s</a><br>
            <a href="mailto:%s" style="font-size:16px; line-height: 24px; color:#fff; text-decoration: none;">%s: %s</a><br>
            <a href="tel:%s" style="font-size:16px; color:#fff; line-height: 24px; text-decoration: none;">%s: %s</a>
          </td>
          <td style="width: 10%%;">
            <a href="%s">
              <img src="https://cdn.shopify.com/s/files/1/0720/5473/5000/files/instagram.png" alt="instagram" style="height: 35px; width: 35px;">
            </a>
          </td>
        </tr>
      </table>
    </div>
  </div>
</div>`,
		b.LogoURL, escapeHTML(b.StoreName),
		text(lang, labelContactUs),
		b.WebsiteURL, text(lang, labelWebsite), escapeHTML(websiteDisplay(b.WebsiteURL)),
		b.ContactEmail, text(lang, labelFooterEmail), escapeHTML(b.ContactEmail),
		telHref(b.ContactPhone), text(lang, labelPhone), escapeHTML(b.ContactPhone),
		b.InstagramURL,
	)

	return RenderedEmail{HTML: doc.String()}
}

// renderItemRow produces one table row. The detailed endpoint shows a parsed
// numeric quantity and falls back to the computed price when no formatted one
// was supplied; the simple endpoint shows both values exactly as given.
func renderItemRow(it LineItem, opts Options) string {
	title := escapeHTML(it.DisplayTitle())
	if v := it.DisplayVariant(); v != "" {
		title += " (" + escapeHTML(v) + ")"
	}

	var qty, price string
	if opts.IncludeSubtotal {
		qty = formatQuantity(it.QuantityValue())
		price = string(it.PriceFormatted)
		if price == "" {
			price = "$" + ParsePrice(it.RawPrice()).StringFixed(2)
		}
	} else {
		qty = string(it.Quantity)
		price = it.RawPrice()
	}

	return fmt.Sprintf(`          <tr>
            <td style="border:1px solid #ddd;padding:8px;">%s</td>
            <td style="border:1px solid #ddd;padding:8px;text-align:center;">%s</td>
            <td style="border:1px solid #ddd;padding:8px;text-align:right;">%s</td>
          </tr>
`, title, escapeHTML(qty), escapeHTML(price))
}

// telHref builds a tel: URI from a display phone number.
func telHref(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// websiteDisplay strips the scheme and trailing slash for the footer link text.
func websiteDisplay(url string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	return strings.TrimSuffix(s, "/")
}
