package catalog

type (
	// Course is an immutable catalog entry; created at build time, never mutated.
	Course struct {
		ID          int      `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Duration    string   `json:"duration"`
		Difficulty  string   `json:"difficulty"`
		Students    string   `json:"students"`
		Rating      float64  `json:"rating"`
		Exercises   int      `json:"exercises"`
		Videos      int      `json:"videos"`
		Benefits    []string `json:"benefits"`
		Modules     []string `json:"modules"`
		Icon        string   `json:"icon"`
		Color       string   `json:"color"`
	}

	// Realm groups courses into an unlockable difficulty tier.
	// RequiredCourses is the total completed-course count needed to unlock it;
	// it is 0 for the entry realm only.
	Realm struct {
		ID              string   `json:"id"`
		Name            string   `json:"name"`
		Description     string   `json:"description"`
		Level           int      `json:"level"`
		RequiredCourses int      `json:"required_courses"`
		MysteryHint     string   `json:"-"`
		Courses         []Course `json:"courses"`
	}

	QuizQuestion struct {
		ID            int      `json:"id"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"-"`
		Explanation   string   `json:"explanation"`
	}

	// Video is a course content item. Only the first one is free to play.
	Video struct {
		ID       int    `json:"id"`
		Title    string `json:"title"`
		Duration string `json:"duration"`
		Type     string `json:"type"` // video | exercise | project
		IsFree   bool   `json:"is_free"`
	}

	Plan struct {
		Name        string   `json:"name"`
		PriceUSD    string   `json:"price_usd"`
		PriceINR    string   `json:"price_inr"`
		Period      string   `json:"period"`
		Description string   `json:"description"`
		Features    []string `json:"features"`
		Popular     bool     `json:"popular"`
		Savings     string   `json:"savings,omitempty"`
	}

	Theme struct {
		ID                 string `json:"id"`
		Name               string `json:"name"`
		PrimaryColor       string `json:"primary_color"`
		SecondaryColor     string `json:"secondary_color"`
		BackgroundGradient string `json:"background_gradient"`
		AccentColor        string `json:"accent_color"`
		TextColor          string `json:"text_color"`
	}
)

// IsEntry reports whether the realm is the entry realm (no unlock requirement).
func (r Realm) IsEntry() bool {
	return r.RequiredCourses == 0
}
