package catalog

import "github.com/verte-zerg/starletters/internal/model"

// FinalID is the reserved id of the built-in final letter.
const FinalID = 99

// RecipientPlaceholder in letter text is replaced with the recipient's name
// when the letter is shown.
const RecipientPlaceholder = "{recipient}"

var builtinCategories = []model.Category{
	{Name: "Memories That Shaped Us", Symbol: "🌠", Total: 4},
	{Name: "Reasons I Love You", Symbol: "💖", Total: 4},
	{Name: "Moments I Never Want to Forget", Symbol: "📷", Total: 4},
	{Name: "Dreams I Have With You", Symbol: "🌙", Total: 4},
	{Name: "Messages From My Heart", Symbol: "💌", Total: 4},
}

var builtinItems = []model.Item{
	{ID: 1, Category: "Memories That Shaped Us", Text: "Remember the evening walks in the month of July where we actually bonded a lot."},
	{ID: 2, Category: "Memories That Shaped Us", Text: "The day after proposing you when we had our first kiss."},
	{ID: 3, Category: "Memories That Shaped Us", Text: "Our first late night chatting when you proposed me."},
	{ID: 4, Category: "Memories That Shaped Us", Text: "The way you carried me when I was unconscious at the Ganesh Puja event."},

	{ID: 5, Category: "Reasons I Love You", Text: "I love the way your eyes light up when you talk about things you're passionate about."},
	{ID: 6, Category: "Reasons I Love You", Text: "Your kindness to everyone, even strangers, constantly inspires me."},
	{ID: 7, Category: "Reasons I Love You", Text: "You make me laugh until my sides hurt, even on my toughest days."},
	{ID: 8, Category: "Reasons I Love You", Text: "The way you listen, truly listen, makes me feel so understood and valued."},

	{ID: 9, Category: "Moments I Never Want to Forget", Text: "The moment you first said 'I love you'. My world stopped and restarted, brighter."},
	{ID: 10, Category: "Moments I Never Want to Forget", Text: "The day when I first saw you."},
	{ID: 11, Category: "Moments I Never Want to Forget", Text: "Holding your hand for the first time."},
	{ID: 12, Category: "Moments I Never Want to Forget", Text: "The quiet comfort of leaning on your shoulder to watch a movie with you."},

	{ID: 13, Category: "Dreams I Have With You", Text: "I dream of exploring ancient cities with you, hand in hand, discovering history together."},
	{ID: 14, Category: "Dreams I Have With You", Text: "Building a home filled with warmth, books, and the scent of your favorite flowers and our two small versions."},
	{ID: 15, Category: "Dreams I Have With You", Text: "Growing old with you, our laughter lines telling the story of a life well-loved."},
	{ID: 16, Category: "Dreams I Have With You", Text: "One day, I hope we dance under the Northern Lights, wrapped in a cosmic embrace."},

	{ID: 17, Category: "Messages From My Heart", Text: "You are my anchor in the storm and my brightest star in the darkest night."},
	{ID: 18, Category: "Messages From My Heart", Text: "With you, I've found a love that feels like coming home."},
	{ID: 19, Category: "Messages From My Heart", Text: "Every day I discover something new to love about you. It's an endless journey of joy."},
	{ID: 20, Category: "Messages From My Heart", Text: "My heart beats in time with yours. You are its favorite song."},
}

var builtinFinal = model.FinalItem{
	Item: model.Item{
		ID:             FinalID,
		Category:       "The Final Letter",
		CategorySymbol: "🌟",
		Text: "My Dearest " + RecipientPlaceholder + ",\n\n" +
			"I tried putting it all into words, but a love this deep, this cosmic, is too vast for paper. " +
			"It's written in the stars we gaze at, in the way our hands fit together, in every shared smile and quiet moment.\n\n" +
			"So here's my promise: I'll keep writing this love, every day, in every way, with you by my side. " +
			"This is not just a chapter; it's our forever story.\n\n" +
			"With all my love, now and always.",
	},
	Title: "The Final Letter",
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtinCategories, builtinItems, builtinFinal)
	if err != nil {
		panic(err)
	}
	return c
}
