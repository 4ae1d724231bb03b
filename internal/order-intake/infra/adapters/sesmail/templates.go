package sesmail

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/greengrove/order-intake/internal/order-intake/core/domain/entity"
)

// Table-based markup throughout: email clients render tables far more
// consistently than CSS layout.

const productHTML = `{{range .}}
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="margin: 16px 0; border-bottom: 1px solid #e0e0e0;">
  <tr>
    <td style="width: 80px; padding-bottom: 16px; vertical-align: top;">
      <img src="{{.ImageURL}}" width="80" height="80" style="display: block; object-fit: contain; border-radius: 4px; border: 1px solid #f0f0f0;" alt="{{.Name}}">
    </td>
    <td style="padding: 0 12px 16px 12px; vertical-align: top;">
      <h4 style="margin: 0 0 4px 0; font-size: 16px; font-weight: 600; color: #333;">{{.Name}}</h4>
      <p style="margin: 0; font-size: 14px; font-weight: 600; color: #2e7d32;">${{.Price}}</p>
    </td>
    <td style="width: 60px; padding-bottom: 16px; vertical-align: top; text-align: right;">
      <span style="font-size: 14px; color: #666; font-weight: bold;">Qty: {{.Qty}}</span>
    </td>
  </tr>
</table>
{{end}}`

const ownerHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Order</title>
</head>
<body style="margin: 0; padding: 20px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f5f5f5;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
    <div style="background-color: #2e7d32; padding: 30px 20px; text-align: center;">
      <h2 style="margin: 0; font-size: 28px; color: #ffffff; font-weight: 600;">New Order Received</h2>
      <p style="margin: 10px 0 0 0; color: #c8e6c9; font-size: 14px;">Order ID: {{.OrderID}}</p>
    </div>
    <div style="padding: 30px 20px;">
      <h3 style="margin: 0 0 20px 0; font-size: 20px; color: #333; font-weight: 600;">Order Items</h3>
      {{.Products}}
    </div>
    <div style="margin: 20px; padding: 24px; background-color: #f9f9f9; border-radius: 8px; border: 1px solid #e0e0e0;">
      <div style="text-align: center; margin-bottom: 20px;">
        <p style="margin: 0 0 8px 0; font-size: 18px; color: #666;">{{.TotalQty}} {{.ItemsWord}}</p>
        <p style="margin: 0; font-size: 24px; font-weight: 700; color: #2e7d32;">Total: ${{.TotalPrice}}</p>
      </div>
      <div style="padding-top: 20px; border-top: 1px solid #e0e0e0;">
        <h4 style="margin: 0 0 16px 0; font-size: 16px; color: #333; font-weight: 600;">Customer Information</h4>
        <table style="width: 100%; border-collapse: collapse;">
          <tr>
            <td style="padding: 8px 0; font-weight: 600; color: #666; font-size: 14px; width: 100px;">Email:</td>
            <td style="padding: 8px 0; color: #333; font-size: 14px;">{{.Email}}</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; font-weight: 600; color: #666; font-size: 14px;">Phone:</td>
            <td style="padding: 8px 0; color: #333; font-size: 14px;">{{.Phone}}</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; font-weight: 600; color: #666; font-size: 14px;">Shipping:</td>
            <td style="padding: 8px 0; color: #333; font-size: 14px;">{{.Shipping}}</td>
          </tr>
        </table>
      </div>
    </div>
    <div style="padding: 20px; text-align: center; background-color: #fafafa; border-top: 1px solid #e0e0e0;">
      <p style="margin: 0; color: #999; font-size: 12px;">This is an automated order notification</p>
    </div>
  </div>
</body>
</html>`

const customerHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Order Confirmation</title>
</head>
<body style="margin: 0; padding: 20px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f5f5f5;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
    <div style="background: linear-gradient(135deg, #2e7d32 0%, #43a047 100%); padding: 40px 20px; text-align: center;">
      <h2 style="margin: 0; font-size: 28px; color: #ffffff; font-weight: 600;">Thank You for Your Order! &#127881;</h2>
      <p style="margin: 12px 0 0 0; color: #c8e6c9; font-size: 14px;">Order ID: {{.OrderID}}</p>
    </div>
    <div style="padding: 30px 20px;">
      <h3 style="margin: 0 0 20px 0; font-size: 20px; color: #333; font-weight: 600; text-align: center;">Your Order Summary</h3>
      {{.Products}}
    </div>
    <div style="margin: 20px; padding: 24px; background-color: #f9f9f9; border-radius: 8px; border: 2px solid #2e7d32; text-align: center;">
      <p style="margin: 0 0 8px 0; font-size: 18px; color: #666;">{{.TotalQty}} {{.ItemsWord}}</p>
      <p style="margin: 0; font-size: 28px; font-weight: 700; color: #2e7d32;">Total: ${{.TotalPrice}}</p>
    </div>
    <div style="margin: 20px; padding: 24px; background: linear-gradient(135deg, #e8f5e9 0%, #c8e6c9 100%); border-radius: 8px; text-align: center;">
      <p style="margin: 0; color: #1b5e20; font-weight: 600; font-size: 16px; line-height: 1.5;">
        We've received your order and will contact you soon to confirm delivery details!
      </p>
    </div>
    <div style="padding: 24px 20px; text-align: center; background-color: #fafafa; border-top: 1px solid #e0e0e0;">
      <p style="margin: 0 0 8px 0; color: #666; font-size: 14px;">Questions about your order?</p>
      <p style="margin: 0; color: #2e7d32; font-size: 14px; font-weight: 600;">Contact us at {{.SupportEmail}}</p>
    </div>
  </div>
</body>
</html>`

var (
	productTmpl  = template.Must(template.New("products").Parse(productHTML))
	ownerTmpl    = template.Must(template.New("owner").Parse(ownerHTML))
	customerTmpl = template.Must(template.New("customer").Parse(customerHTML))
)

type productView struct {
	Name     string
	Price    string
	ImageURL string
	Qty      int
}

type emailView struct {
	OrderID      string
	Products     template.HTML
	TotalQty     int
	TotalPrice   string
	ItemsWord    string
	Email        string
	Phone        string
	Shipping     string
	SupportEmail string
}

// buildView renders the shared product rows and fills the fields both
// templates use. Items are sorted by name so the same cart always renders
// the same document.
func buildView(order *entity.OrderRequest, orderID string) (*emailView, error) {
	names := make([]string, 0, len(order.Cart.Items))
	for name := range order.Cart.Items {
		names = append(names, name)
	}
	sort.Strings(names)

	products := make([]productView, 0, len(names))
	for _, name := range names {
		it := order.Cart.Items[name]
		products = append(products, productView{
			Name:     name,
			Price:    fmt.Sprintf("%.2f", it.Price),
			ImageURL: it.ImageURL,
			Qty:      it.Qty,
		})
	}

	var rows strings.Builder
	if err := productTmpl.Execute(&rows, products); err != nil {
		return nil, fmt.Errorf("render product rows: %w", err)
	}

	itemsWord := "Items"
	if order.Cart.TotalQty == 1 {
		itemsWord = "Item"
	}

	return &emailView{
		OrderID:    orderID,
		Products:   template.HTML(rows.String()),
		TotalQty:   order.Cart.TotalQty,
		TotalPrice: fmt.Sprintf("%.2f", order.Cart.TotalPrice),
		ItemsWord:  itemsWord,
		Email:      order.Email,
		Phone:      order.Phone,
		Shipping:   order.Shipping,
	}, nil
}

// renderOwnerEmail produces the business-owner notice with the customer's
// contact details included.
func renderOwnerEmail(order *entity.OrderRequest, orderID string) (string, error) {
	view, err := buildView(order, orderID)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	if err := ownerTmpl.Execute(&out, view); err != nil {
		return "", fmt.Errorf("render owner email: %w", err)
	}
	return out.String(), nil
}

// renderCustomerEmail produces the confirmation sent to the customer.
func renderCustomerEmail(order *entity.OrderRequest, orderID, supportEmail string) (string, error) {
	view, err := buildView(order, orderID)
	if err != nil {
		return "", err
	}
	view.SupportEmail = supportEmail
	var out strings.Builder
	if err := customerTmpl.Execute(&out, view); err != nil {
		return "", fmt.Errorf("render customer email: %w", err)
	}
	return out.String(), nil
}
