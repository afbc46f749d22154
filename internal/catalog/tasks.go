package catalog

var builtinTasks = []Task{
	// anticipation
	{
		ID:         "meal_planning",
		Name:       "Meal planning & grocery list",
		Pillar:     PillarAnticipation,
		Definition: "By meal planning & prep we mean the whole flow — not just cooking, but deciding what to eat, checking what's low, building the list, and sequencing the week so food actually happens.",
		WhatCounts: []string{
			"Noticing what's low / planning the week's meals",
			"Creating or updating the grocery list / booking delivery/pick-up",
			"Remembering dietary needs, timings, after-school or late-work days",
			"Prepping ahead (marinating, batch cooking) so the week runs",
		},
		Note:    "Answer for the 'invisible' work here (planning/organising); the cooking task itself is separate.",
		Example: "If one partner mostly plans and manages the list, set Responsibility nearer their side (e.g., 70–90).",
	},
	{
		ID:         "household_supplies",
		Name:       "Household supplies & consumables",
		Pillar:     PillarAnticipation,
		Definition: "Noticing when household items are running low and ensuring they're restocked before you run out.",
		WhatCounts: []string{
			"Tracking toilet paper, cleaning products, toiletries",
			"Noticing when bins need new bags, dishwasher needs tablets",
			"Ordering or buying replacements before they run out",
			"Remembering what brands/types each person prefers",
		},
		Example: "If one partner notices and orders everything, Responsibility ~80-100 to them.",
	},
	{
		ID:         "holiday_planning",
		Name:       "Holiday & vacation planning",
		Pillar:     PillarAnticipation,
		Definition: "Planning family holidays and vacations - researching, booking, and coordinating all the details.",
		WhatCounts: []string{
			"Researching holiday destinations and accommodation",
			"Booking flights, hotels, activities",
			"Planning itineraries and packing lists",
			"Coordinating time off work and school holidays",
			"Managing travel documents (passports, visas, insurance)",
		},
		Example: "If one partner does most of the holiday research and booking, Responsibility ~80-100.",
	},
	{
		ID:         "birthday_gifts",
		Name:       "Gifts, cards & social obligations",
		Pillar:     PillarAnticipation,
		Definition: "Remembering birthdays, anniversaries, and social occasions, and organising cards, gifts, or RSVPs.",
		WhatCounts: []string{
			"Remembering family/friends' birthdays and important dates",
			"Choosing, buying, wrapping gifts",
			"Sending cards or organising celebrations",
			"Tracking RSVPs and social commitments",
		},
		Example: "If one partner manages the family calendar of social obligations, Responsibility ~70-100.",
	},
	{
		ID:         "seasonal_prep",
		Name:       "Seasonal & future planning",
		Pillar:     PillarAnticipation,
		Definition: "Thinking ahead to seasonal needs, holidays, and future household requirements.",
		WhatCounts: []string{
			"Planning for holidays, school breaks, seasons changing",
			"Preparing for birthdays, Christmas, summer holidays",
			"Anticipating when kids need new clothes/shoes/school supplies",
			"Thinking ahead about home repairs or maintenance",
		},
		Example: "If one partner does most of the forward-thinking, Responsibility ~70-90.",
	},
	// identification
	{
		ID:         "cooking",
		Name:       "Cooking (the visible bit)",
		Pillar:     PillarIdentification,
		Definition: "This is the doing part — cooking the meals. It doesn't include deciding what to cook or building the shopping list (covered in Meal planning).",
		WhatCounts: []string{
			"Cooking on weekdays/weekends",
			"Warming/prepping for kids or different mealtimes",
			"Tidying as you go (if part of your norm)",
		},
		Note:    "If you alternate days, that's shared — use ~50.",
		Example: "If one partner cooks most weeknights, Responsibility might sit ~70–80.",
	},
	{
		ID:         "cleaning",
		Name:       "Cleaning (routine)",
		Pillar:     PillarIdentification,
		Definition: "Regular cleaning tasks and the system behind them (not occasional deep cleans unless that's your norm).",
		WhatCounts: []string{
			"Weekly surfaces, bathrooms, floors",
			"Small resets (dishes, counters, bins)",
			"Remembering consumables (sponges, sprays, bags)",
			"A loose rota/checklist if you use one",
		},
		Note:    "If one person sets the standard and nudges others, that's part of the load.",
		Example: "If you split weekends but one partner owns the standard, Responsibility ~60–70 to them.",
	},
	{
		ID:         "tidying",
		Name:       "Tidying & decluttering",
		Pillar:     PillarIdentification,
		Definition: "Noticing mess, clutter, and items out of place, and putting things back where they belong.",
		WhatCounts: []string{
			"Picking up clothes, toys, items left around",
			"Putting things back in their proper places",
			"Decluttering surfaces and common areas",
			"Organising storage and cupboards",
		},
		Example: "If one partner is constantly tidying up after everyone, Responsibility ~70-100.",
	},
	{
		ID:         "laundry",
		Name:       "Laundry flow",
		Pillar:     PillarIdentification,
		Definition: "Everything from noticing the hamper's full to finishing clean clothes in drawers. We're focusing on the flow ownership (who keeps it moving) rather than who folds once.",
		WhatCounts: []string{
			"Noticing when to run loads; sorting/whites/darks",
			"Keeping machines cycling; moving wet clothes promptly",
			"Folding/hanging; putting away or delegating it",
			"Remembering school kits/sports days/uniforms",
		},
		Note:    "If one partner 'keeps it spinning' even if others help sometimes, weight toward that person.",
		Example: "If A notices and runs everything and B folds occasionally, Responsibility ~70–90 to A.",
	},
	{
		ID:         "home_maintenance",
		Name:       "Home repairs & maintenance",
		Pillar:     PillarIdentification,
		Definition: "Noticing when things break or need maintenance, and organising repairs or fixes.",
		WhatCounts: []string{
			"Spotting broken items, leaks, things that need fixing",
			"Calling repair people, getting quotes",
			"Scheduling and coordinating home maintenance",
			"DIY repairs or organising someone to do them",
		},
		Example: "If one partner notices and coordinates all repairs, Responsibility ~80-100.",
	},
	{
		ID:           "pet_care",
		Name:         "Pet care & management",
		Pillar:       PillarIdentification,
		RequiresPets: true,
		Definition:   "Daily pet care and the mental load of remembering vet appointments, food, medication, and pet needs.",
		WhatCounts: []string{
			"Feeding, walking, grooming pets",
			"Remembering vet appointments and vaccinations",
			"Noticing when pet food or supplies are running low",
			"Coordinating pet care when away from home",
			"Managing pet health issues and medication",
		},
		Example: "If one partner manages all pet schedules and needs, Responsibility ~80-100.",
	},
	// decision
	{
		ID:         "bills_admin",
		Name:       "Bills & admin",
		Pillar:     PillarDecision,
		Definition: "Staying on top of finances and life admin so things don't lapse or get stressful.",
		WhatCounts: []string{
			"Paying rent/mortgage, utilities, subscriptions",
			"Switching providers, renewals, comparisons",
			"Budgeting, expense tracking, filing receipts",
			"Chasing missing refunds/claims",
		},
		Note:    "Think 'headspace ownership' — who ensures this stays under control?",
		Example: "If one partner runs the calendar, reminders and switches, Responsibility ~70–100.",
	},
	{
		ID:         "appointments_health",
		Name:       "Appointments & health",
		Pillar:     PillarDecision,
		Definition: "Booking, tracking and following up on healthcare or essential appointments for the household.",
		WhatCounts: []string{
			"Booking GP/dentist/optician; tracking reminders",
			"Booking car service/repairs if you own one",
			"Following up on results, prescriptions, referrals",
			"Keeping the household calendar up to date",
		},
		Note:    "If one person handles most of the coordination, weight toward them.",
		Example: "If A books and tracks most appointments, Responsibility ~70–90.",
	},
	{
		ID:         "social_calendar",
		Name:       "Social calendar & coordination",
		Pillar:     PillarDecision,
		Definition: "Managing the household's social life, coordinating schedules, and making social plans.",
		WhatCounts: []string{
			"Coordinating family/couple social plans",
			"Managing conflicting schedules between household members",
			"Deciding on weekend plans or activities",
			"Organising when to see friends and family",
		},
		Example: "If one partner coordinates most social planning, Responsibility ~70-90.",
	},
	{
		ID:               "kids_activities",
		Name:             "Children's activities & hobbies",
		Pillar:           PillarDecision,
		RequiresChildren: true,
		Definition:       "Researching, choosing, and enrolling children in activities, hobbies, and clubs.",
		WhatCounts: []string{
			"Researching options for activities/clubs/sports",
			"Deciding what children should participate in",
			"Enrolling and managing registrations",
			"Coordinating schedules and transport",
		},
		Example: "If one partner researches and enrolls children in activities, Responsibility ~80-100.",
	},
	{
		ID:         "tech_troubleshooting",
		Name:       "Tech support & troubleshooting",
		Pillar:     PillarDecision,
		Definition: "Being the household tech support - fixing issues, managing devices, and keeping digital life running.",
		WhatCounts: []string{
			"Fixing wifi/computer/phone problems",
			"Managing subscriptions and accounts (Netflix, utilities apps, etc.)",
			"Setting up new devices and software",
			"Troubleshooting when tech doesn't work",
			"Managing passwords, security, backups",
			"Being the person everyone asks when tech breaks",
		},
		Note:    "This is executive function work - requires problem-solving and staying calm under pressure.",
		Example: "If one partner is the default tech troubleshooter, Responsibility ~70-100.",
	},
	// monitoring
	{
		ID:               "kids_school",
		Name:             "Children: school & schoolwork",
		Pillar:           PillarMonitoring,
		RequiresChildren: true,
		Definition:       "The orchestration behind school life — not the single pickup, but who keeps the whole system moving.",
		WhatCounts: []string{
			"Remembering non-uniform days, forms, trips, fees",
			"Tracking homework and school projects",
			"Parent-teacher communication, emails, portals",
			"Monitoring children's academic progress",
		},
		Note:    "If you don't have children, this won't show.",
		Example: "If one partner is the default 'school admin', Responsibility tends to be high (e.g., 80–100).",
	},
	{
		ID:               "kids_health",
		Name:             "Children's health & development",
		Pillar:           PillarMonitoring,
		RequiresChildren: true,
		Definition:       "Tracking children's health, development milestones, and medical needs.",
		WhatCounts: []string{
			"Booking and attending children's health appointments",
			"Tracking vaccinations and health records",
			"Monitoring developmental milestones",
			"Noticing if children seem unwell or struggling",
		},
		Example: "If one partner monitors and coordinates children's health, Responsibility ~80-100.",
	},
	{
		ID:         "household_calendar",
		Name:       "Household calendar & coordination",
		Pillar:     PillarMonitoring,
		Definition: "Being the keeper of the family schedule and ensuring everyone knows where they need to be.",
		WhatCounts: []string{
			"Maintaining the shared calendar",
			"Reminding others about upcoming appointments/events",
			"Coordinating who's picking up kids, who's cooking, etc.",
			"Ensuring conflicting commitments are resolved",
		},
		Example: "If one partner is the 'calendar keeper', Responsibility ~80-100.",
	},
	{
		ID:         "food_waste",
		Name:       "Food waste & leftovers",
		Pillar:     PillarMonitoring,
		Definition: "Tracking what food is in the fridge, using up leftovers, and preventing waste.",
		WhatCounts: []string{
			"Checking what's in the fridge before it goes off",
			"Planning meals around leftovers",
			"Remembering to use ingredients before they expire",
			"Managing food storage and organisation",
		},
		Example: "If one partner always knows what's in the fridge, Responsibility ~70-90.",
	},
	{
		ID:                 "work_life_coordination",
		Name:               "Work-life coordination",
		Pillar:             PillarMonitoring,
		RequiresEmployment: true,
		Definition:         "Managing the household around work schedules and coordinating when conflicts arise.",
		WhatCounts: []string{
			"Tracking both partners' work schedules",
			"Adjusting household plans around work commitments",
			"Coordinating childcare/pickups when work runs late",
			"Managing household when one partner travels for work",
		},
		Example: "If one partner does most of the 'work schedule tetris', Responsibility ~70-90.",
	},
	{
		ID:              "vehicle_maintenance",
		Name:            "Car/vehicle maintenance",
		Pillar:          PillarMonitoring,
		RequiresVehicle: true,
		Definition:      "Tracking car servicing, MOT, insurance, and ensuring the vehicle stays roadworthy.",
		WhatCounts: []string{
			"Remembering MOT and service due dates",
			"Booking and arranging car maintenance",
			"Managing car insurance renewals",
			"Noticing when car needs attention (tyres, fluids, issues)",
			"Coordinating repairs and dealing with mechanics",
		},
		Example: "If one partner tracks and arranges all vehicle maintenance, Responsibility ~80-100.",
	},
	// emotional
	{
		ID:               "kids_emotional",
		Name:             "Children's emotional wellbeing",
		Pillar:           PillarEmotional,
		RequiresChildren: true,
		Definition:       "Noticing and responding to children's emotional needs, worries, and struggles.",
		WhatCounts: []string{
			"Checking in with children about their feelings",
			"Noticing when children seem upset or struggling",
			"Providing emotional support and reassurance",
			"Managing bedtime routines, soothing upsets",
		},
		Example: "If one partner does most emotional check-ins, Responsibility ~80-100.",
	},
	{
		ID:         "relationship_maintenance",
		Name:       "Relationship maintenance",
		Pillar:     PillarEmotional,
		Definition: "The work of maintaining your relationship - planning couple time, checking in emotionally.",
		WhatCounts: []string{
			"Suggesting date nights or couple time",
			"Initiating conversations about the relationship",
			"Noticing when the relationship needs attention",
			"Remembering anniversaries and special occasions",
		},
		Example: "If one partner usually suggests couple time, Responsibility ~70-90.",
	},
	{
		ID:         "family_relationships",
		Name:       "Extended family relationships",
		Pillar:     PillarEmotional,
		Definition: "Managing relationships with extended family - remembering to call, organising visits, managing expectations.",
		WhatCounts: []string{
			"Remembering to call/message parents, in-laws, relatives",
			"Organising family visits and gatherings",
			"Managing family expectations and conflicts",
			"Keeping family members updated on household news",
		},
		Example: "If one partner manages most family communications, Responsibility ~80-100.",
	},
	{
		ID:         "household_mood",
		Name:       "Household mood & atmosphere",
		Pillar:     PillarEmotional,
		Definition: "Managing the emotional atmosphere of the home - smoothing conflicts, creating positive moments.",
		WhatCounts: []string{
			"Noticing when household tension is high",
			"Mediating conflicts between household members",
			"Creating positive moments (family activities, treats)",
			"Being the 'emotional thermostat' of the home",
		},
		Example: "If one partner is the emotional manager, Responsibility ~80-100.",
	},
	{
		ID:         "partner_support",
		Name:       "Partner emotional support",
		Pillar:     PillarEmotional,
		Definition: "Providing emotional support to your partner - listening, remembering their needs, checking in.",
		WhatCounts: []string{
			"Remembering what's stressing your partner",
			"Asking how their day/work/life is going",
			"Providing emotional support and encouragement",
			"Noticing when your partner needs extra support",
		},
		Example: "If one partner does most emotional checking-in, Responsibility ~70-90.",
	},
}
