package harvest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/EVA666999/lenta-parser/internal/model"
)

// ItemToText renders a detail payload as plain text for the raw-content
// repository: name, brand, prices, attributes and the description with its
// HTML flattened to visible text.
func ItemToText(item model.RawItem, brand string) string {
	var sb strings.Builder

	sb.WriteString(item.Name + "\n\n")

	if brand != "" {
		sb.WriteString("Бренд: " + brand + "\n")
	}
	if item.Prices.Regular > 0 {
		sb.WriteString(fmt.Sprintf("Цена: %.2f\n", model.Rubles(item.Prices.Regular)))
	}
	if item.Prices.Promo > 0 && item.Prices.Promo != item.Prices.Regular {
		sb.WriteString(fmt.Sprintf("Цена по акции: %.2f\n", model.Rubles(item.Prices.Promo)))
	}
	for _, attr := range item.Attributes {
		if attr.Name != "" && attr.Value != "" {
			sb.WriteString(attr.Name + ": " + attr.Value + "\n")
		}
	}
	if item.Description != "" {
		sb.WriteString("\nОписание:\n" + flattenHTML(item.Description) + "\n")
	}

	return sb.String()
}

func flattenHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	var content []string
	doc.Find("h1, h2, p, li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			content = append(content, t)
		}
	})
	if len(content) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(content, "\n")
}
