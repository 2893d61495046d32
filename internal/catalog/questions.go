package catalog

import "relationship_mojo_backend/internal/model"

// The full questionnaire. Section n owns IDs [10(n-1)+1, 10n].
var questions = []model.Question{
	// Section 1: Attachment Style
	{
		ID:           1,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "How comfortable are you with depending on others?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Very uncomfortable - I prefer to be completely self-reliant",
			"Somewhat uncomfortable - I struggle with asking for help",
			"Neutral - I can depend on others when necessary",
			"Comfortable - I'm generally ok with asking for support",
			"Very comfortable - I easily reach out when I need help",
		},
		OrderIndex: 1,
		IsRequired: true,
	},
	{
		ID:           2,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "Think about a time you felt truly connected to a partner. What were you doing, and what made that experience feel so special?",
		QuestionType: model.FreeText,
		OrderIndex:   2,
		IsRequired:   true,
	},
	{
		ID:           3,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "How do you typically react when you and your partner have a disagreement?",
		QuestionType: model.MultipleChoicePlusText,
		Options: []string{
			"I tend to withdraw and need space",
			"I become frustrated and need to express my feelings immediately",
			"I stay engaged and focus on finding solutions",
			"I try to compromise but sometimes need time to process",
		},
		OrderIndex: 3,
		IsRequired: true,
	},
	{
		ID:           4,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "How do you balance independence and closeness in relationships?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I strongly prioritize my independence above all else",
			"I need significant personal space while maintaining connection",
			"I seek a balanced approach between togetherness and independence",
			"I prefer spending most time together while maintaining some independence",
			"I prioritize togetherness over independence",
		},
		OrderIndex: 4,
		IsRequired: true,
	},
	{
		ID:           5,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "Think back to your childhood. When you were upset or needed comfort, what was your typical response?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I easily went to parents/caregivers for comfort",
			"I tried to handle things on my own",
			"I had inconsistent responses depending on the situation",
			"I struggled to express my needs for comfort",
			"I sought comfort but didn't always feel better after",
		},
		OrderIndex: 5,
		IsRequired: true,
	},
	{
		ID:           6,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "How do you feel when your partner needs time alone?",
		QuestionType: model.MultipleChoicePlusText,
		Options: []string{
			"Secure - I'm comfortable with it",
			"Anxious - I worry about what it means",
			"Rejected - I take it personally",
			"Relieved - I value alone time too",
		},
		OrderIndex: 6,
		IsRequired: true,
	},
	{
		ID:           7,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "Let's say you and your partner are a superhero duo. What are your powers, and how do you work together to save the day?",
		QuestionType: model.FreeText,
		OrderIndex:   7,
		IsRequired:   true,
	},
	{
		ID:           8,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "Do you find it easy to express your needs and feelings to your partner?",
		QuestionType: model.YesNoComment,
		OrderIndex:   8,
		IsRequired:   true,
	},
	{
		ID:           9,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "When someone gets too close emotionally, I typically:",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Feel comfortable and welcome the closeness",
			"Feel somewhat overwhelmed but try to manage it",
			"Feel the need to create some distance",
			"Feel anxious about maintaining the connection",
			"Feel conflicted between wanting closeness and needing space",
		},
		OrderIndex: 9,
		IsRequired: true,
	},
	{
		ID:           10,
		SectionID:    1,
		SectionTitle: "Attachment Style",
		QuestionText: "If your ideal relationship were a movie, what genre would it be and who would play the lead roles?",
		QuestionType: model.FreeText,
		OrderIndex:   10,
		IsRequired:   true,
	},

	// Section 2: Communication and Conflict Resolution Style
	{
		ID:           11,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "How would you describe your primary communication style with partners?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Direct and straightforward",
			"Careful and diplomatic",
			"Emotional and expressive",
			"Reserved and thoughtful",
			"Playful and lighthearted",
		},
		OrderIndex: 1,
		IsRequired: true,
	},
	{
		ID:           12,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "How do you typically handle disagreements?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Address them immediately to find resolution",
			"Take time to process before discussing",
			"Try to avoid conflict when possible",
			"Look for compromise and middle ground",
			"Depend on the situation and intensity",
		},
		OrderIndex: 2,
		IsRequired: true,
	},
	{
		ID:           13,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "When you're upset with your partner, what's your typical first response?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I express my feelings immediately",
			"I need time to cool down first",
			"I try to understand their perspective",
			"I withdraw until I feel better",
			"I seek to resolve it through discussion",
		},
		OrderIndex: 3,
		IsRequired: true,
	},
	{
		ID:           14,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "Describe a recent disagreement you had with someone close to you. How did you handle it, and what would you do differently?",
		QuestionType: model.FreeText,
		OrderIndex:   4,
		IsRequired:   true,
	},
	{
		ID:           15,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "How comfortable are you with expressing anger or frustration?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Very comfortable - I express it openly",
			"Somewhat comfortable - I can express it when needed",
			"Neutral - I express it sometimes",
			"Somewhat uncomfortable - I struggle to express it",
			"Very uncomfortable - I avoid expressing it",
		},
		OrderIndex: 5,
		IsRequired: true,
	},
	{
		ID:           16,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "When your partner is upset, what's your typical response?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I immediately try to fix the problem",
			"I listen and offer emotional support",
			"I give them space to process",
			"I try to understand what went wrong",
			"I feel overwhelmed and unsure how to help",
		},
		OrderIndex: 6,
		IsRequired: true,
	},
	{
		ID:           17,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "You and your partner are planning a dinner party, but you have completely different visions. How do you navigate this?",
		QuestionType: model.FreeText,
		OrderIndex:   7,
		IsRequired:   true,
	},
	{
		ID:           18,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "Do you feel heard and understood in your relationships?",
		QuestionType: model.YesNoComment,
		OrderIndex:   8,
		IsRequired:   true,
	},
	{
		ID:           19,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "How do you prefer to receive feedback or criticism?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Direct and straightforward",
			"Gentle and supportive",
			"With specific examples",
			"In private, one-on-one",
			"With suggestions for improvement",
		},
		OrderIndex: 9,
		IsRequired: true,
	},
	{
		ID:           20,
		SectionID:    2,
		SectionTitle: "Communication & Conflict Resolution",
		QuestionText: "If you could have a magical communication device that helped you and your partner understand each other perfectly, what would it look like and how would it work?",
		QuestionType: model.FreeText,
		OrderIndex:   10,
		IsRequired:   true,
	},

	// Section 3: Emotional Intelligence
	{
		ID:           21,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "How well do you understand your own emotions?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Very well - I'm always aware of what I'm feeling",
			"Well - I usually understand my emotions",
			"Moderately - I sometimes understand my emotions",
			"Poorly - I often struggle to identify my emotions",
			"Very poorly - I'm rarely aware of my emotions",
		},
		OrderIndex: 1,
		IsRequired: true,
	},
	{
		ID:           22,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "Imagine you have a control panel for your emotions. What are some of the buttons and levers, and how do you use them to manage how you feel?",
		QuestionType: model.FreeText,
		OrderIndex:   2,
		IsRequired:   true,
	},
	{
		ID:           23,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "How do you typically handle your emotions during stressful situations?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I often feel overwhelmed and struggle to cope",
			"I try to manage but sometimes get overwhelmed",
			"I can usually stay calm but need time to process",
			"I generally maintain emotional balance",
			"I effectively regulate my emotions even under severe stress",
		},
		OrderIndex: 3,
		IsRequired: true,
	},
	{
		ID:           24,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "How good are you at reading other people's emotions?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Excellent - I can easily read others' emotions",
			"Good - I usually pick up on others' emotions",
			"Average - I sometimes read others' emotions correctly",
			"Poor - I often miss emotional cues from others",
			"Very poor - I struggle to understand others' emotions",
		},
		OrderIndex: 4,
		IsRequired: true,
	},
	{
		ID:           25,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "When someone close to you is going through a difficult time, how do you typically respond?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I offer practical solutions and advice",
			"I provide emotional support and listen",
			"I give them space unless they ask for help",
			"I try to distract them with positive activities",
			"I share my own similar experiences",
		},
		OrderIndex: 5,
		IsRequired: true,
	},
	{
		ID:           26,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "Describe a time when you successfully helped someone through an emotional challenge. What did you do?",
		QuestionType: model.FreeText,
		OrderIndex:   6,
		IsRequired:   true,
	},
	{
		ID:           27,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "How do you handle it when your emotions feel overwhelming?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I take time alone to process",
			"I talk to someone I trust",
			"I engage in physical activity or movement",
			"I use breathing or mindfulness techniques",
			"I distract myself with other activities",
		},
		OrderIndex: 7,
		IsRequired: true,
	},
	{
		ID:           28,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "Do you feel comfortable expressing vulnerability to your partner?",
		QuestionType: model.YesNoComment,
		OrderIndex:   8,
		IsRequired:   true,
	},
	{
		ID:           29,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "How do you typically respond when someone is angry with you?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I become defensive and argue back",
			"I try to understand their perspective",
			"I withdraw and avoid the confrontation",
			"I apologize even if I don't think I'm wrong",
			"I stay calm and work toward resolution",
		},
		OrderIndex: 9,
		IsRequired: true,
	},
	{
		ID:           30,
		SectionID:    3,
		SectionTitle: "Emotional Intelligence",
		QuestionText: "If emotions were weather patterns, what would your emotional climate be like, and how would you forecast your emotional weather?",
		QuestionType: model.FreeText,
		OrderIndex:   10,
		IsRequired:   true,
	},

	// Section 4: Love Language and Expressions of Affection
	{
		ID:           31,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "How do you most naturally express love and affection?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Through words and compliments",
			"Through helpful actions",
			"Through physical touch",
			"Through quality time together",
			"Through meaningful gifts",
		},
		OrderIndex: 1,
		IsRequired: true,
	},
	{
		ID:           32,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "How do you prefer to receive love and affection?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Through words and compliments",
			"Through helpful actions",
			"Through physical touch",
			"Through quality time together",
			"Through meaningful gifts",
		},
		OrderIndex: 2,
		IsRequired: true,
	},
	{
		ID:           33,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "You're having a rough day and stop by Walmart to pick up a few things. Which aisle do you find yourself gravitating towards for a little mood boost?",
		QuestionType: model.FreeText,
		OrderIndex:   3,
		IsRequired:   true,
	},
	{
		ID:           34,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "What makes you feel most appreciated in a relationship?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"When my partner verbalizes their feelings",
			"When they go out of their way to help me",
			"When they make time just for us",
			"When they remember small details about me",
			"When they show physical affection",
		},
		OrderIndex: 4,
		IsRequired: true,
	},
	{
		ID:           35,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "Imagine you're planning a surprise for your partner. What would it be, and how would you make it special?",
		QuestionType: model.FreeText,
		OrderIndex:   5,
		IsRequired:   true,
	},
	{
		ID:           36,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "How do you typically show someone you care during difficult times?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Offer emotional support and encouragement",
			"Provide practical help and solutions",
			"Give them space but stay available",
			"Spend extra time with them",
			"Express care through physical comfort",
		},
		OrderIndex: 6,
		IsRequired: true,
	},
	{
		ID:           37,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "Describe your ideal way of spending quality time with a partner.",
		QuestionType: model.FreeText,
		OrderIndex:   7,
		IsRequired:   true,
	},
	{
		ID:           38,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "How comfortable are you with public displays of affection?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Very comfortable with most forms of PDA",
			"Comfortable with subtle gestures only",
			"It depends on the situation",
			"Generally uncomfortable with PDA",
			"Completely uncomfortable with any PDA",
		},
		OrderIndex: 8,
		IsRequired: true,
	},
	{
		ID:           39,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "Imagine you're creating a care package for your partner who's feeling down. What are three essential items you include, and why?",
		QuestionType: model.FreeText,
		OrderIndex:   9,
		IsRequired:   true,
	},
	{
		ID:           40,
		SectionID:    4,
		SectionTitle: "Love Language & Expressions of Affection",
		QuestionText: "When you want to show your partner you appreciate them, you're most likely to...",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Tell them how much you admire and value them",
			"Do something helpful to make their life easier",
			"Plan a special outing or activity to enjoy together",
			"Give them a heartfelt hug or cuddle",
			"Surprise them with a small, thoughtful gift",
		},
		OrderIndex: 10,
		IsRequired: true,
	},

	// Section 5: Values, Goals, and Commitment Level
	{
		ID:           41,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "How do you view commitment in relationships?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"I prefer to keep things casual and open",
			"I value flexibility and freedom within relationships",
			"I believe in committed partnerships with some independence",
			"I strongly value exclusive, committed relationships",
			"I seek complete dedication and lifelong partnership",
		},
		OrderIndex: 1,
		IsRequired: true,
	},
	{
		ID:           42,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "Imagine you and your partner are setting sail on a voyage. Where are you going, and what kind of ship are you sailing on?",
		QuestionType: model.FreeText,
		OrderIndex:   2,
		IsRequired:   true,
	},
	{
		ID:           43,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "What are your primary goals in a relationship?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Growth and personal development",
			"Stability and security",
			"Adventure and new experiences",
			"Deep emotional connection",
			"Building a family/future together",
		},
		OrderIndex: 3,
		IsRequired: true,
	},
	{
		ID:           44,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "How do you balance career and relationship priorities?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Career comes first",
			"Relationship comes first",
			"Seek equal balance between both",
			"Depends on current circumstances",
			"Integration of both as life priorities",
		},
		OrderIndex: 4,
		IsRequired: true,
	},
	{
		ID:           45,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "If you could build your dream home with your partner, what would it look like, where would it be, and what would be the most important features?",
		QuestionType: model.FreeText,
		OrderIndex:   5,
		IsRequired:   true,
	},
	{
		ID:           46,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "How aligned do you need your partner's values to be with yours?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"Completely aligned on all important values",
			"Aligned on major values, flexible on others",
			"Share some core values, differ on others",
			"Values can differ if there's mutual respect",
			"Value differences make relationships interesting",
		},
		OrderIndex: 6,
		IsRequired: true,
	},
	{
		ID:           47,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "When it comes to managing finances in a relationship, which scenario best aligns with your values?",
		QuestionType: model.MultipleChoicePlusText,
		Options: []string{
			"Complete financial merger - shared accounts and decisions",
			"Hybrid approach - shared and individual accounts with agreed-upon splits",
			"Independent finances with shared responsibilities",
			"Flexible system based on each partner's income and comfort level",
			"Separate finances with clear boundaries",
		},
		OrderIndex: 7,
		IsRequired: true,
	},
	{
		ID:           48,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "What role does personal growth play in your relationships?",
		QuestionType: model.MultipleChoice,
		Options: []string{
			"It's the primary purpose",
			"It's important but not the main focus",
			"It happens naturally but isn't a goal",
			"I prefer stability to constant growth",
			"I keep personal growth separate from relationships",
		},
		OrderIndex: 8,
		IsRequired: true,
	},
	{
		ID:           49,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "Do you believe in soulmates?",
		QuestionType: model.YesNoComment,
		OrderIndex:   9,
		IsRequired:   true,
	},
	{
		ID:           50,
		SectionID:    5,
		SectionTitle: "Values, Goals & Commitment Level",
		QuestionText: "If you could create a time capsule that represents your ideal relationship 10 years from now, what 5 items would you put in it and why?",
		QuestionType: model.FreeText,
		OrderIndex:   10,
		IsRequired:   true,
	},
}
