package bullcow

// Menu labels. Menu selections are committed as their label text, so the
// engine matches input against these exact strings.
const (
	OptPlay         = "Play"
	OptInstructions = "Instructions"
	OptExit         = "Exit"
	OptYes          = "Yes"
	OptNo           = "No"
)

var (
	mainMenuOptions   = []string{OptPlay, OptInstructions, OptExit}
	difficultyOptions = []string{Easy.String(), Medium.String(), Hard.String()}
	playAgainOptions  = []string{OptYes, OptNo}
)

const (
	msgLogo = "\n\n\n\n<RichText.Hidden><logo></>"

	msgInstructions = "<RichText.Small>The game is rather simple, at the beginning, an isogram will be chosen as a hidden word " +
		"and you will be given the number of letters in it, you then have to type in your guess," +
		"if you guess wrong, the game will give you a count of bulls and cows, every bull is a " +
		"right letter in the right place, and every cow is a right letter in the wrong place. " +
		"Wrong guesses deduct lives.</>\n\n<RichText.Small>" +
		"An isogram is a word with no repeating letters.</>"
	msgContinue = "Press enter to continue..."

	msgSelectDifficulty = "Select difficulty:\n"

	msgWordLength = "The hidden word is %d letters long."
	msgLives      = "You have %d lives remaining."
	msgGuessHint  = "\nType in your guess and press enter to continue..."

	msgWrongLength   = "The hidden word is %d letters long, try again!"
	msgNotIsogram    = "The entered word is not an isogram."
	msgIsogramHelp   = "An isogram is a word that has no repeating letters.\nTry again!"
	msgAlreadyTried  = "You have already tried %s. It resulted in %d bulls and %d cows."
	msgIncorrect     = "Incorrect, you have %d bulls and %d cows.\nPlease try again."
	msgRevealAnswer  = "Incorrect, the correct answer was \"%s\"."
	msgWin           = "You win!"
	msgGameOver      = "Game over!"
	msgPlayAgain     = "\nWould you like to play again?"
	msgDebugLoaded   = "<RichText.Debug>[DBG] Loaded %d valid words.</>"
	msgDebugRevealed = "<RichText.Debug>[DBG] The hidden word is '%s'.</>"
)
