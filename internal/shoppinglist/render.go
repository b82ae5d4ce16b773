package shoppinglist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Document is a rendered shopping list ready to be sent as an attachment
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ParseFormat maps a query value to a Format. Empty means text.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case "", FormatText:
		return FormatText, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", domain.NewValidationError("format", fmt.Sprintf("unsupported format %q", raw))
	}
}

// Render produces the document for list in the requested format
func Render(list *domain.ShoppingList, format Format) (*Document, error) {
	switch format {
	case FormatText, "":
		return &Document{Filename: FilenameText, ContentType: ContentTypeText, Body: renderText(list)}, nil
	case FormatCSV:
		body, err := renderCSV(list)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgRenderFailed, err)
		}
		return &Document{Filename: FilenameCSV, ContentType: ContentTypeCSV, Body: body}, nil
	default:
		return nil, domain.NewValidationError("format", fmt.Sprintf("unsupported format %q", format))
	}
}

func renderText(list *domain.ShoppingList) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s (%s)\n\n", TextTitle, list.GeneratedAt.Format(TextDateLayout))
	for i, item := range list.Items {
		fmt.Fprintf(&buf, TextItemFormat, i+1, item.Name, item.MeasurementUnit, item.Amount)
	}
	if len(list.Recipes) > 0 {
		buf.WriteString("\n" + TextRecipesHeading + "\n")
		for _, r := range list.Recipes {
			fmt.Fprintf(&buf, TextRecipeFormat, r.Name, r.CookingTime)
		}
	}
	return buf.Bytes()
}

func renderCSV(list *domain.ShoppingList) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, item := range list.Items {
		row := []string{item.Name, item.MeasurementUnit, strconv.FormatInt(item.Amount, 10)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
