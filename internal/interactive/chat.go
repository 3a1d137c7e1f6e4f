package interactive

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"marketbrief/internal/assistant"
	"marketbrief/internal/core"
)

// ChatHandler manages an interactive terminal session with the trading
// assistant. Replies come from the local article collection first, then a
// fresh provider search, then a canned fallback, so the loop never fails.
type ChatHandler struct {
	responder *assistant.Responder
	scanner   *bufio.Scanner
	articles  []core.Article
	history   []core.ChatMessage
}

// NewChatHandler creates a new chat handler answering against the given
// article collection.
func NewChatHandler(responder *assistant.Responder, articles []core.Article) *ChatHandler {
	return &ChatHandler{
		responder: responder,
		scanner:   bufio.NewScanner(os.Stdin),
		articles:  articles,
		history:   make([]core.ChatMessage, 0),
	}
}

// StartChatSession prints the greeting and the session banner.
func (h *ChatHandler) StartChatSession() {
	greeting := h.responder.Greeting()
	h.history = append(h.history, greeting)

	fmt.Printf("\n💬 Trading Assistant Chat\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("Answering from %d loaded articles.\n", len(h.articles))
	fmt.Printf("\nCommands:\n")
	fmt.Printf("  /help    - Show available commands\n")
	fmt.Printf("  /save    - Save conversation to file\n")
	fmt.Printf("  /exit    - End chat session\n")
	fmt.Printf("  quit     - End chat session\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	fmt.Printf("Assistant: %s\n\n", greeting.Text)
}

// RunChatLoop runs the main interactive chat loop.
func (h *ChatHandler) RunChatLoop() error {
	for {
		fmt.Print("You: ")
		if !h.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(h.scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if err := h.handleCommand(input); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		if strings.ToLower(input) == "quit" || strings.ToLower(input) == "exit" {
			fmt.Println("\n👋 Chat session ended. Goodbye!")
			break
		}

		h.processUserInput(input)
	}

	return nil
}

// processUserInput records the user's message and prints the assistant reply.
func (h *ChatHandler) processUserInput(input string) {
	h.history = append(h.history, h.responder.UserMessage(input))

	reply := h.responder.Respond(context.Background(), input, h.articles)
	h.history = append(h.history, reply)

	fmt.Printf("\nAssistant: %s\n\n", reply.Text)
}

// handleCommand processes chat commands.
func (h *ChatHandler) handleCommand(command string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "/help":
		h.showHelp()
	case "/save":
		filename := "chat-log.md"
		if len(parts) > 1 {
			filename = strings.Join(parts[1:], " ")
		}
		return h.saveConversation(filename)
	case "/exit":
		fmt.Println("\n👋 Chat session ended. Goodbye!")
		os.Exit(0)
	default:
		fmt.Printf("Unknown command: %s. Type /help for available commands.\n", parts[0])
	}

	return nil
}

// showHelp displays available commands.
func (h *ChatHandler) showHelp() {
	fmt.Println("\n📚 Available Commands:")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("  /help          - Show this help message")
	fmt.Println("  /save [file]   - Save conversation to file (default: chat-log.md)")
	fmt.Println("  /exit          - End chat session")
	fmt.Println("  quit           - End chat session")
	fmt.Println("\nYou can ask about:")
	fmt.Println("  - Stocks, crypto, tech or market headlines in the feed")
	fmt.Println("  - Market sentiment across the loaded articles")
	fmt.Println("  - Any ticker or company in the news")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()
}

// saveConversation saves the chat history to a file.
func (h *ChatHandler) saveConversation(filename string) error {
	var content strings.Builder

	content.WriteString("# Trading Assistant Chat Log\n\n")
	content.WriteString(fmt.Sprintf("**Date:** %s\n", time.Now().Format("2006-01-02 15:04:05")))
	content.WriteString(fmt.Sprintf("**Articles loaded:** %d\n\n", len(h.articles)))

	content.WriteString("## Conversation\n\n")
	for _, msg := range h.history {
		if msg.Sender == core.SenderUser {
			content.WriteString(fmt.Sprintf("**You:** %s\n\n", msg.Text))
		} else {
			content.WriteString(fmt.Sprintf("**Assistant:** %s\n\n", msg.Text))
		}
	}

	if err := os.WriteFile(filename, []byte(content.String()), 0644); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	fmt.Printf("💾 Conversation saved to: %s\n", filename)
	return nil
}
