package form

import (
	"strconv"
	"strings"

	"github.com/vijayguhan10/fourtrip-partner/internal/store"
)

// Per-kind draft constructors and payload builders. The three verticals
// share one Draft/Editor core; everything kind-specific (default fields,
// which free-text fields comma-split, and the wire encoding of list values)
// lives here.

// CreateDish opens a blank dish draft scoped to a restaurant.
func CreateDish(restaurantID string) *Draft {
	return NewCreate(map[string]string{
		"name":             "",
		"description":      "",
		"category":         "",
		"price":            "",
		"discounted_price": "",
		"is_active":        "true",
		"restaurant_id":    restaurantID,
	}, "filter")
}

// EditDish copies an existing dish into a draft. The comma-joined image_url
// string is exploded for per-index editing and re-joined at build time.
func EditDish(dish store.Dish) *Draft {
	return NewEdit(dish.ID,
		map[string]string{
			"name":             dish.Name,
			"description":      dish.Description,
			"category":         dish.Category,
			"price":            formatNumber(dish.Price),
			"discounted_price": formatNumber(dish.DiscountedPrice),
			"is_active":        strconv.FormatBool(dish.IsActive),
			"restaurant_id":    dish.RestaurantID,
		},
		map[string][]string{"filter": dish.Filter},
		nil,
		SplitCSV(dish.ImageURL),
		"filter")
}

// BuildDish assembles and validates the dish request body.
func BuildDish(d *Draft) (store.DishPayload, error) {
	p := store.DishPayload{
		Name:            d.Field("name"),
		Description:     d.Field("description"),
		Category:        d.Field("category"),
		Price:           d.Number("price"),
		DiscountedPrice: d.Number("discounted_price"),
		ImageURL:        strings.Join(d.Images(), ","),
		IsActive:        d.Bool("is_active"),
		RestaurantID:    d.Field("restaurant_id"),
		Filter:          d.ListField("filter"),
	}
	if err := store.Validate.Struct(p); err != nil {
		return store.DishPayload{}, err
	}
	return p, nil
}

// CreateProduct opens a blank product draft scoped to a shop.
func CreateProduct(shopID string) *Draft {
	return NewCreate(map[string]string{
		"name":             "",
		"description":      "",
		"price":            "",
		"discounted_price": "",
		"image_url":        "",
		"shop_id":          shopID,
	})
}

func EditProduct(product store.Product) *Draft {
	return NewEdit(product.ID,
		map[string]string{
			"name":             product.Name,
			"description":      product.Description,
			"price":            formatNumber(product.Price),
			"discounted_price": formatNumber(product.DiscountedPrice),
			"image_url":        product.ImageURL,
			"shop_id":          product.ShopID,
		},
		nil,
		nil,
		SplitCSV(product.Images))
}

// BuildProduct assembles the product body. The shop endpoints predate the
// array encoding, so staged images go out comma-joined.
func BuildProduct(d *Draft) (store.ProductPayload, error) {
	p := store.ProductPayload{
		Name:            d.Field("name"),
		Description:     d.Field("description"),
		Price:           d.Number("price"),
		DiscountedPrice: d.Number("discounted_price"),
		ImageURL:        d.Field("image_url"),
		Images:          strings.Join(d.Images(), ","),
		ShopID:          d.Field("shop_id"),
	}
	if err := store.Validate.Struct(p); err != nil {
		return store.ProductPayload{}, err
	}
	return p, nil
}

// CreateActivity opens a blank activity draft. "slots" is comma-split free
// text; the included-items list starts with its single empty slot.
func CreateActivity(activityID string) *Draft {
	return NewCreate(map[string]string{
		"name":           "",
		"description":    "",
		"price":          "",
		"discount":       "",
		"duration":       "",
		"agerequirement": "",
		"dresscode":      "",
		"accessibility":  "",
		"difficulty":     "",
		"activity_id":    activityID,
	}, "slots")
}

func EditActivity(activity store.Activity) *Draft {
	return NewEdit(activity.ID,
		map[string]string{
			"name":           activity.Name,
			"description":    activity.Description,
			"price":          formatNumber(activity.Price),
			"discount":       formatNumber(activity.DiscountPercentage),
			"duration":       activity.AdditionalInfo.Duration,
			"agerequirement": activity.AdditionalInfo.AgeRequirement,
			"dresscode":      activity.AdditionalInfo.DressCode,
			"accessibility":  activity.AdditionalInfo.Accessibility,
			"difficulty":     activity.AdditionalInfo.Difficulty,
			"activity_id":    activity.ActivityID,
		},
		map[string][]string{"slots": activity.Slots},
		activity.WhatsIncluded,
		activity.ImageURL,
		"slots")
}

// BuildActivity assembles the activity body; list fields stay true arrays
// for this kind.
func BuildActivity(d *Draft) (store.ActivityPayload, error) {
	p := store.ActivityPayload{
		Name:          d.Field("name"),
		Description:   d.Field("description"),
		WhatsIncluded: d.Included(),
		AdditionalInfo: store.AdditionalInfo{
			Duration:       d.Field("duration"),
			AgeRequirement: d.Field("agerequirement"),
			DressCode:      d.Field("dresscode"),
			Accessibility:  d.Field("accessibility"),
			Difficulty:     d.Field("difficulty"),
		},
		Price:              d.Number("price"),
		Slots:              d.ListField("slots"),
		DiscountPercentage: d.Number("discount"),
		ActivityID:         d.Field("activity_id"),
		ImageURL:           d.Images(),
	}
	if err := store.Validate.Struct(p); err != nil {
		return store.ActivityPayload{}, err
	}
	return p, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
