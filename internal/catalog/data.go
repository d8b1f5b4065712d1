package catalog

// DefaultGuides returns the built-in guide set shown when no stores have
// published guides yet.  Exactly twelve entries, one full catalog page.
func DefaultGuides() []Guide {
	return []Guide{
		{ID: "1", Name: "田中健太", Location: "tokyo", Rating: 4.8, Price: 8000, Image: "/assets/img/guides/default-1.svg", Languages: []string{"ja", "en"}, Specialties: []string{"history", "culture"}},
		{ID: "2", Name: "佐藤美咲", Location: "osaka", Rating: 4.9, Price: 7500, Image: "/assets/img/guides/default-2.svg", Languages: []string{"ja", "en", "zh"}, Specialties: []string{"food", "local"}},
		{ID: "3", Name: "鈴木一郎", Location: "kyoto", Rating: 4.7, Price: 9000, Image: "/assets/img/guides/default-3.svg", Languages: []string{"ja", "en"}, Specialties: []string{"temples", "traditional"}},
		{ID: "4", Name: "山田花子", Location: "osaka", Rating: 4.6, Price: 7000, Image: "/assets/img/guides/default-4.svg", Languages: []string{"ja", "en"}, Specialties: []string{"shopping", "food"}},
		{ID: "5", Name: "Johnson Mike", Location: "tokyo", Rating: 4.8, Price: 8500, Image: "/assets/img/guides/default-5.svg", Languages: []string{"en", "ja"}, Specialties: []string{"business", "modern"}},
		{ID: "6", Name: "李美麗", Location: "kyoto", Rating: 4.9, Price: 8800, Image: "/assets/img/guides/default-6.svg", Languages: []string{"zh", "ja", "en"}, Specialties: []string{"culture", "temples"}},
		{ID: "7", Name: "高橋翔太", Location: "hokkaido", Rating: 4.7, Price: 9500, Image: "/assets/img/guides/default-7.svg", Languages: []string{"ja", "en"}, Specialties: []string{"nature", "skiing"}},
		{ID: "8", Name: "Anderson Sarah", Location: "tokyo", Rating: 4.8, Price: 8200, Image: "/assets/img/guides/default-8.svg", Languages: []string{"en", "ja"}, Specialties: []string{"fashion", "youth"}},
		{ID: "9", Name: "中村由美", Location: "fukuoka", Rating: 4.6, Price: 7300, Image: "/assets/img/guides/default-9.svg", Languages: []string{"ja", "ko"}, Specialties: []string{"food", "local"}},
		{ID: "10", Name: "Garcia Carlos", Location: "osaka", Rating: 4.7, Price: 7800, Image: "/assets/img/guides/default-10.svg", Languages: []string{"es", "en", "ja"}, Specialties: []string{"nightlife", "entertainment"}},
		{ID: "11", Name: "伊藤真理", Location: "hiroshima", Rating: 4.8, Price: 8600, Image: "/assets/img/guides/default-11.svg", Languages: []string{"ja", "en"}, Specialties: []string{"history", "peace"}},
		{ID: "12", Name: "Smith Robert", Location: "kyoto", Rating: 4.9, Price: 9200, Image: "/assets/img/guides/default-12.svg", Languages: []string{"en", "ja"}, Specialties: []string{"zen", "meditation"}},
	}
}
