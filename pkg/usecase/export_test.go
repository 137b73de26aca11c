package usecase

// BuildChatSystemPrompt exposes buildChatSystemPrompt for testing
var BuildChatSystemPrompt = buildChatSystemPrompt
