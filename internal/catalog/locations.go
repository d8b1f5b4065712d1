package catalog

// locationNames maps location codes to their Japanese display names.
var locationNames = map[string]string{
	"tokyo":      "東京",
	"osaka":      "大阪",
	"kyoto":      "京都",
	"hiroshima":  "広島",
	"fukuoka":    "福岡",
	"sapporo":    "札幌",
	"sendai":     "仙台",
	"kanazawa":   "金沢",
	"nara":       "奈良",
	"nikko":      "日光",
	"hakone":     "箱根",
	"mount-fuji": "富士山",
	"okinawa":    "沖縄",
}

// LocationName returns the display name for a location code.  Unknown
// codes fall back to the code itself so a card never shows blank.
func LocationName(code string) string {
	if name, ok := locationNames[code]; ok {
		return name
	}
	return code
}

// LocationNames returns a copy of the full code-to-name map.
func LocationNames() map[string]string {
	out := make(map[string]string, len(locationNames))
	for k, v := range locationNames {
		out[k] = v
	}
	return out
}
