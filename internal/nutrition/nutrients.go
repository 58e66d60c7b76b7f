package nutrition

import (
	"fmt"
	"math"
	"strings"
)

// Nutrients is the fixed nutrient breakdown tracked for every food.
// Calories are kcal, sodium is mg, everything else is grams. Request bodies
// reject negative amounts through the binding tags.
type Nutrients struct {
	Calories      float64 `json:"calories" binding:"min=0" example:"200"`
	Protein       float64 `json:"protein" binding:"min=0" example:"10"`
	Carbohydrates float64 `json:"carbohydrates" binding:"min=0" example:"25"`
	Fat           float64 `json:"fat" binding:"min=0" example:"8"`
	Fiber         float64 `json:"fiber" binding:"min=0" example:"3"`
	Sugar         float64 `json:"sugar" binding:"min=0" example:"5"`
	Sodium        float64 `json:"sodium" binding:"min=0" example:"120"`
}

type FoodItem struct {
	FdcID           int64     `json:"fdc_id" example:"171705"`
	Description     string    `json:"description" example:"Rice, white, cooked"`
	BrandOwner      string    `json:"brand_owner" example:""`
	ServingSize     float64   `json:"serving_size" example:"100"`
	ServingSizeUnit string    `json:"serving_size_unit" example:"g"`
	Nutrients       Nutrients `gorm:"embedded;embeddedPrefix:nutrient_" json:"nutrients"`
}

type FoodSearchResult struct {
	FdcID           int64   `json:"fdc_id"`
	Description     string  `json:"description"`
	BrandOwner      string  `json:"brand_owner"`
	DataType        string  `json:"data_type"`
	ServingSize     float64 `json:"serving_size"`
	ServingSizeUnit string  `json:"serving_size_unit"`
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var mealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func ParseMealType(value string) (MealType, error) {
	v := MealType(strings.ToLower(strings.TrimSpace(value)))
	for _, m := range mealTypes {
		if v == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid meal type %q (expected breakfast, lunch, dinner or snack)", value)
}

// DefaultServingSize is used when a food has no serving size of its own.
const DefaultServingSize = 100.0

// Scale returns per-serving nutrients scaled to quantity, in the food's serving unit.
func Scale(perServing Nutrients, quantity, servingSize float64) Nutrients {
	if servingSize <= 0 {
		servingSize = DefaultServingSize
	}
	multiplier := quantity / servingSize

	return Nutrients{
		Calories:      math.Round(perServing.Calories * multiplier),
		Protein:       Round2(perServing.Protein * multiplier),
		Carbohydrates: Round2(perServing.Carbohydrates * multiplier),
		Fat:           Round2(perServing.Fat * multiplier),
		Fiber:         Round2(perServing.Fiber * multiplier),
		Sugar:         Round2(perServing.Sugar * multiplier),
		Sodium:        Round2(perServing.Sodium * multiplier),
	}
}

// Aggregate sums every field across entries. Calories are rounded to an
// integer and the rest to two decimals; an empty slice yields zero totals.
func Aggregate(entries []Nutrients) Nutrients {
	var acc Nutrients
	for _, n := range entries {
		acc = acc.Add(n)
	}
	return acc.Rounded()
}

func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories:      n.Calories + other.Calories,
		Protein:       n.Protein + other.Protein,
		Carbohydrates: n.Carbohydrates + other.Carbohydrates,
		Fat:           n.Fat + other.Fat,
		Fiber:         n.Fiber + other.Fiber,
		Sugar:         n.Sugar + other.Sugar,
		Sodium:        n.Sodium + other.Sodium,
	}
}

func (n Nutrients) Rounded() Nutrients {
	return Nutrients{
		Calories:      math.Round(n.Calories),
		Protein:       Round2(n.Protein),
		Carbohydrates: Round2(n.Carbohydrates),
		Fat:           Round2(n.Fat),
		Fiber:         Round2(n.Fiber),
		Sugar:         Round2(n.Sugar),
		Sodium:        Round2(n.Sodium),
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
