package advisor

import "strings"

// farmingKeywords gates which questions reach the model at all. A question
// matching none of these is answered locally with the scope message and
// costs no API call.
var farmingKeywords = []string{
	"farm", "farming", "crop", "crops", "fertilizer", "pesticide", "seed", "seeds",
	"agriculture", "agricultural", "soil", "irrigation", "harvest", "plant", "planting",
	"wheat", "rice", "cotton", "sugarcane", "corn", "maize", "barley", "soybean",
	"kharif", "rabi", "zaid", "monsoon", "weather", "expense", "cost", "budget",
	"field", "plot", "acre", "hectare", "yield", "production", "market", "price",
	"subsidy", "scheme", "government", "organic", "bio", "compost", "manure",
	"tractor", "equipment", "machinery", "storage", "processing", "supply", "supplier",
}

func isFarmingRelated(question string) bool {
	lowered := strings.ToLower(question)
	for _, keyword := range farmingKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
