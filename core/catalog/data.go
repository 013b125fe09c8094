package catalog

// Built-in realm/course catalog. The course roster mirrors the marketing
// site: practical life skills school never taught, grouped into four
// progressively harder realms.

var builtinRealms = []Realm{
	{
		ID:          "foundation",
		Name:        "Foundation Forest",
		Description: "Where every journey begins. Master the essentials of independent living.",
		Level:       1,
		Courses: []Course{
			{
				ID:          1,
				Title:       "Personal Finance Basics",
				Description: "Build a budget, crush debt and start saving with confidence.",
				Duration:    "4 weeks",
				Difficulty:  "Beginner",
				Students:    "12.5k",
				Rating:      4.8,
				Exercises:   18,
				Videos:      24,
				Benefits:    []string{"Create a monthly budget you can stick to", "Understand credit scores and debt", "Build your first emergency fund"},
				Modules:     []string{"Money Mindset", "Budgeting 101", "Debt & Credit", "Saving Strategies"},
				Icon:        "💰",
				Color:       "bg-emerald-500",
			},
			{
				ID:          2,
				Title:       "Cooking Essentials",
				Description: "From knife skills to weeknight meals that actually taste good.",
				Duration:    "3 weeks",
				Difficulty:  "Beginner",
				Students:    "9.8k",
				Rating:      4.7,
				Exercises:   15,
				Videos:      20,
				Benefits:    []string{"Cook 15 go-to meals from scratch", "Shop and meal-prep efficiently", "Master basic knife and pan technique"},
				Modules:     []string{"Kitchen Setup", "Knife Skills", "Weeknight Meals", "Meal Prep"},
				Icon:        "🍳",
				Color:       "bg-orange-500",
			},
			{
				ID:          3,
				Title:       "Time Management Fundamentals",
				Description: "Beat procrastination and own your calendar.",
				Duration:    "2 weeks",
				Difficulty:  "Beginner",
				Students:    "8.1k",
				Rating:      4.6,
				Exercises:   12,
				Videos:      16,
				Benefits:    []string{"Plan weeks that survive contact with reality", "Stop procrastinating with proven triggers", "Protect deep-work time"},
				Modules:     []string{"Priorities", "Planning Systems", "Procrastination", "Energy Management"},
				Icon:        "⏰",
				Color:       "bg-sky-500",
			},
		},
	},
	{
		ID:              "life-mastery",
		Name:            "Life Mastery Mountains",
		Description:     "Climb higher. Practical wisdom for running your own life.",
		Level:           2,
		RequiredCourses: 2,
		MysteryHint:     "The mountains whisper of practical wisdom...",
		Courses: []Course{
			{
				ID:          4,
				Title:       "Home Repairs & Maintenance",
				Description: "Fix it yourself before calling (and paying) someone else.",
				Duration:    "4 weeks",
				Difficulty:  "Intermediate",
				Students:    "6.4k",
				Rating:      4.7,
				Exercises:   20,
				Videos:      28,
				Benefits:    []string{"Handle the 20 most common home fixes", "Know when to DIY and when to call a pro", "Build a starter toolkit that covers 90% of jobs"},
				Modules:     []string{"Toolkit Basics", "Plumbing", "Electrical Safety", "Walls & Fixtures"},
				Icon:        "🔧",
				Color:       "bg-amber-500",
			},
			{
				ID:          5,
				Title:       "Car Care & Maintenance",
				Description: "Keep your car alive and your mechanic honest.",
				Duration:    "3 weeks",
				Difficulty:  "Intermediate",
				Students:    "5.2k",
				Rating:      4.6,
				Exercises:   14,
				Videos:      22,
				Benefits:    []string{"Do routine maintenance yourself", "Diagnose common warning signs early", "Negotiate repairs without getting fleeced"},
				Modules:     []string{"Under the Hood", "Routine Maintenance", "Warning Signs", "Dealing with Mechanics"},
				Icon:        "🚗",
				Color:       "bg-red-500",
			},
			{
				ID:          6,
				Title:       "Social Skills & Communication",
				Description: "Conversations, conflict and confidence in any room.",
				Duration:    "4 weeks",
				Difficulty:  "Intermediate",
				Students:    "7.9k",
				Rating:      4.8,
				Exercises:   16,
				Videos:      25,
				Benefits:    []string{"Start and hold conversations naturally", "Resolve conflict without burning bridges", "Read the room and adapt"},
				Modules:     []string{"First Impressions", "Active Listening", "Difficult Conversations", "Networking"},
				Icon:        "💬",
				Color:       "bg-violet-500",
			},
		},
	},
	{
		ID:              "elite-skills",
		Name:            "Elite Skills Citadel",
		Description:     "Advanced knowledge for those who keep climbing.",
		Level:           3,
		RequiredCourses: 5,
		MysteryHint:     "Ancient towers hold secrets of advanced knowledge...",
		Courses: []Course{
			{
				ID:          7,
				Title:       "Investing & Wealth Building",
				Description: "Make your money work while you sleep.",
				Duration:    "5 weeks",
				Difficulty:  "Advanced",
				Students:    "4.3k",
				Rating:      4.9,
				Exercises:   22,
				Videos:      30,
				Benefits:    []string{"Build a diversified starter portfolio", "Understand index funds, stocks and bonds", "Avoid the classic beginner mistakes"},
				Modules:     []string{"Investing Mindset", "Index Funds", "Retirement Accounts", "Risk Management"},
				Icon:        "📈",
				Color:       "bg-green-600",
			},
			{
				ID:          8,
				Title:       "Negotiation Mastery",
				Description: "Salary, rent, contracts: never leave money on the table.",
				Duration:    "3 weeks",
				Difficulty:  "Advanced",
				Students:    "3.7k",
				Rating:      4.8,
				Exercises:   15,
				Videos:      18,
				Benefits:    []string{"Negotiate salary with a proven script", "Stay calm under pressure", "Find win-win outcomes that stick"},
				Modules:     []string{"Preparation", "Anchoring & Framing", "Salary Talks", "Everyday Negotiation"},
				Icon:        "🤝",
				Color:       "bg-blue-600",
			},
			{
				ID:          9,
				Title:       "Career Strategy & Personal Branding",
				Description: "Design a career instead of drifting through one.",
				Duration:    "4 weeks",
				Difficulty:  "Advanced",
				Students:    "4.0k",
				Rating:      4.7,
				Exercises:   17,
				Videos:      21,
				Benefits:    []string{"Map a 5-year career plan", "Build a personal brand that opens doors", "Interview like a pro"},
				Modules:     []string{"Career Mapping", "Personal Brand", "Interviewing", "Promotion Playbook"},
				Icon:        "🎯",
				Color:       "bg-indigo-600",
			},
		},
	},
	{
		ID:              "mastery",
		Name:            "Mastery Sanctum",
		Description:     "The final sanctuary. Teach, lead and give back.",
		Level:           4,
		RequiredCourses: 8,
		MysteryHint:     "The final sanctuary awaits true masters...",
		Courses: []Course{
			{
				ID:          10,
				Title:       "Leadership & Mentoring",
				Description: "Turn your skills into impact on other people.",
				Duration:    "5 weeks",
				Difficulty:  "Expert",
				Students:    "2.1k",
				Rating:      4.9,
				Exercises:   19,
				Videos:      26,
				Benefits:    []string{"Lead small teams with confidence", "Mentor others effectively", "Give feedback people act on"},
				Modules:     []string{"Leading Yourself", "Leading Others", "Mentoring", "Feedback Culture"},
				Icon:        "🦉",
				Color:       "bg-purple-700",
			},
			{
				ID:          11,
				Title:       "Entrepreneurship Foundations",
				Description: "Validate, launch and run a side business.",
				Duration:    "6 weeks",
				Difficulty:  "Expert",
				Students:    "2.8k",
				Rating:      4.8,
				Exercises:   24,
				Videos:      32,
				Benefits:    []string{"Validate an idea before spending money", "Set up the legal and financial basics", "Land your first paying customers"},
				Modules:     []string{"Idea Validation", "Business Basics", "First Customers", "Scaling Up"},
				Icon:        "🚀",
				Color:       "bg-pink-600",
			},
			{
				ID:          12,
				Title:       "Life Design & Long-Term Planning",
				Description: "Put it all together into a life you actually want.",
				Duration:    "4 weeks",
				Difficulty:  "Expert",
				Students:    "1.9k",
				Rating:      4.9,
				Exercises:   14,
				Videos:      18,
				Benefits:    []string{"Define what a good life means for you", "Plan a decade without losing the present", "Build systems that keep you on track"},
				Modules:     []string{"Values & Vision", "Decade Planning", "Habits & Systems", "Review Rituals"},
				Icon:        "🧭",
				Color:       "bg-amber-600",
			},
		},
	},
}

// Themes keyed by realm ID. Colors match the marketing site's palette.
var builtinThemes = map[string]Theme{
	"foundation": {
		ID:                 "foundation",
		Name:               "Foundation Forest",
		PrimaryColor:       "#10b981",
		SecondaryColor:     "#059669",
		BackgroundGradient: "from-emerald-900 via-slate-900 to-emerald-800",
		AccentColor:        "#34d399",
		TextColor:          "#ffffff",
	},
	"life-mastery": {
		ID:                 "life-mastery",
		Name:               "Life Mastery Mountains",
		PrimaryColor:       "#3b82f6",
		SecondaryColor:     "#2563eb",
		BackgroundGradient: "from-blue-900 via-slate-900 to-blue-800",
		AccentColor:        "#60a5fa",
		TextColor:          "#ffffff",
	},
	"elite-skills": {
		ID:                 "elite-skills",
		Name:               "Elite Skills Citadel",
		PrimaryColor:       "#8b5cf6",
		SecondaryColor:     "#7c3aed",
		BackgroundGradient: "from-violet-900 via-slate-900 to-violet-800",
		AccentColor:        "#a78bfa",
		TextColor:          "#ffffff",
	},
	"mastery": {
		ID:                 "mastery",
		Name:               "Mastery Sanctum",
		PrimaryColor:       "#f59e0b",
		SecondaryColor:     "#d97706",
		BackgroundGradient: "from-amber-900 via-slate-900 to-amber-800",
		AccentColor:        "#fbbf24",
		TextColor:          "#ffffff",
	},
}

// Achievement labels in unlock order; the dashboard shows the first N,
// N being the completed-course count.
var builtinAchievements = []string{
	"First Steps",
	"Budget Boss",
	"Kitchen Confident",
	"Time Tamer",
	"Fix-It Friend",
	"Road Ready",
	"People Person",
	"Wealth Builder",
	"Deal Maker",
	"Career Architect",
	"Guide & Mentor",
	"Realm Master",
}

// Course content items shown on the course detail view. The first item is
// free for everyone; the rest require a premium subscription.
var builtinVideos = []Video{
	{ID: 1, Title: "Introduction & Getting Started", Duration: "5:30", Type: "video", IsFree: true},
	{ID: 2, Title: "Essential Tools Overview", Duration: "8:15", Type: "video"},
	{ID: 3, Title: "Hands-on Practice Session", Duration: "12:45", Type: "exercise"},
	{ID: 4, Title: "Common Mistakes to Avoid", Duration: "6:20", Type: "video"},
	{ID: 5, Title: "Final Project Walkthrough", Duration: "15:30", Type: "project"},
}

var builtinPlans = []Plan{
	{
		Name:        "Weekly",
		PriceUSD:    "$9.99",
		PriceINR:    "₹829",
		Period:      "/week",
		Description: "Perfect for short-term learning",
		Features:    []string{"All courses unlocked", "Download certificates", "Priority support", "Mobile access"},
	},
	{
		Name:        "Monthly",
		PriceUSD:    "$24.99",
		PriceINR:    "₹2,079",
		Period:      "/month",
		Description: "Most popular choice",
		Features:    []string{"All courses unlocked", "Download certificates", "Priority support", "Mobile access", "Exclusive workshops"},
		Popular:     true,
		Savings:     "Save 37% vs Weekly",
	},
	{
		Name:        "Yearly",
		PriceUSD:    "$199.99",
		PriceINR:    "₹16,639",
		Period:      "/year",
		Description: "Best value for committed learners",
		Features:    []string{"All courses unlocked", "Download certificates", "Priority support", "Mobile access", "Exclusive workshops", "1-on-1 mentoring sessions"},
		Savings:     "Save 67% vs Monthly",
	},
}

// Quiz banks keyed by course ID. Courses without a dedicated bank fall back
// to defaultQuizBank.
var builtinQuizBanks = map[int][]QuizQuestion{
	1: defaultQuizBank,
}

var defaultQuizBank = []QuizQuestion{
	{
		ID:       1,
		Question: "What's the first step in creating a monthly budget?",
		Options: []string{
			"Start spending less",
			"Calculate total income",
			"List all expenses",
			"Set financial goals",
		},
		CorrectAnswer: "Calculate total income",
		Explanation:   "Understanding your total income is crucial as it forms the foundation of your budget planning.",
	},
	{
		ID:       2,
		Question: "Which of these is a good emergency fund target?",
		Options: []string{
			"1 month of expenses",
			"3-6 months of expenses",
			"1 week of expenses",
			"1 year of expenses",
		},
		CorrectAnswer: "3-6 months of expenses",
		Explanation:   "3-6 months of expenses provides adequate protection against most financial emergencies while being realistic to achieve.",
	},
	{
		ID:       3,
		Question: "What's the 50/30/20 budgeting rule?",
		Options: []string{
			"50% savings, 30% needs, 20% wants",
			"50% needs, 30% wants, 20% savings",
			"50% wants, 30% savings, 20% needs",
			"50% needs, 30% savings, 20% wants",
		},
		CorrectAnswer: "50% needs, 30% wants, 20% savings",
		Explanation:   "The 50/30/20 rule suggests allocating 50% of income to needs, 30% to wants, and 20% to savings and debt repayment.",
	},
}
