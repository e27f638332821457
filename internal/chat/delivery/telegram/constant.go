package telegram

import "time"

const (
	MsgStart = "👋 Welcome to *EduBot*!\n\nAsk me anything about admissions, courses, fees or placements and I'll do my best to help."
	MsgHelp  = "*How to use EduBot*\n\nJust type your question, for example:\n`What is the admission process?`\n`Which courses do you offer?`\n`What is the placement record?`"

	MsgNotReady = "EduBot is starting up or under maintenance. Please try again later."
	MsgError    = "Something went wrong while answering. Please try again."
)

// replyTimeout bounds the background classification and send for one update.
const replyTimeout = 30 * time.Second
