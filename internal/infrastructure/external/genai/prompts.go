package genai

// Directives sent as the system message of each chat completion
const (
	translateInstruction = "Please translate the following text to English language, if it is not already in English. " +
		"If it is already in English, please return the text as it is. " +
		"Note: Please dont add any extra information or context to the text. Just return the text as it is."

	summarizeInstruction = "You are a meeting assistant. Summarize the following meeting transcript in a concise paragraph. " +
		"Cover the main topics, decisions and outcomes. Reply with the summary text only."

	extractActionItemsInstruction = "You are a meeting assistant. Extract the action items from the following meeting transcript. " +
		"Reply with a JSON array of strings only, one short imperative sentence per action item, with no prose and no markdown. " +
		"If there are no action items, reply with [\"No action items required\"]."
)
