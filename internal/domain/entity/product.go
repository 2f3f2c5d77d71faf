package entity

// Product is a purchasable item. Price is a currency-agnostic unit value;
// orders snapshot it at write time rather than referencing it live.
type Product struct {
	ID                string
	Name              string
	Brand             string
	Size              string
	Price             float64
	URL               string // Display URL for the product image or page.
	CreationTimestamp string
	UpdatedTimestamp  string
}
