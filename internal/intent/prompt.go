package intent

import (
	"fmt"
	"strings"

	"github.com/voicebite/voicebite-backend/internal/menu"
)

// PromptVersion identifies the rule table embedded in compiled prompts.
// Bump it whenever the action vocabulary or its payload shapes change.
const PromptVersion = "v1"

// Document is a fully rendered oracle instruction. It is plain text; the
// oracle is told to answer with exactly one JSON object.
type Document string

// Compile renders a transcript and a catalog snapshot into the oracle
// instruction document. It is a pure function: the same transcript and
// snapshot always produce the same document. The caller must reject empty
// transcripts before reaching this point.
func Compile(transcript string, snap menu.Snapshot) Document {
	var b strings.Builder

	b.WriteString("You are the VoiceBite AI Intent Engine (rules ")
	b.WriteString(PromptVersion)
	b.WriteString(").\n")
	b.WriteString("Convert the user's spoken transcript into exactly one JSON object with the shape\n")
	b.WriteString(`{"action": "<ACTION>", "payload": {...}} and output nothing else: no prose,` + "\n")
	b.WriteString("no markdown, no code fences.\n\n")

	b.WriteString("Menu catalog:\n")
	for _, item := range snap.Items {
		fmt.Fprintf(&b, "- %s | %s | %s\n", item.Name, item.Description, item.Category)
	}

	categories := snap.Categories()
	b.WriteString("\nKnown categories: ")
	b.WriteString(strings.Join(categories, ", "))
	b.WriteString("\n\n")

	b.WriteString("Actions and when to use them:\n")
	fmt.Fprintf(&b, "- %s: the user asks to see one of the known categories. payload: {\"category\": \"<category>\"}\n", ActionGetCategory)
	fmt.Fprintf(&b, "- %s: the user asks for deals, offers, or discounts. payload: {}\n", ActionGetOffers)
	fmt.Fprintf(&b, "- %s: the user looks for food by description or name without naming a category. payload: {\"query\": \"<text>\"}\n", ActionSearch)
	fmt.Fprintf(&b, "- %s: the user wants a page such as home, menu, or cart. payload: {\"page\": \"<page>\"}\n", ActionNavigate)
	fmt.Fprintf(&b, "- %s: the user wants to add a dish to their basket. payload: {\"name\": \"<item name from the transcript>\"}\n", ActionAddToCart)
	fmt.Fprintf(&b, "- %s: the user wants to pay, check out, or place the order. payload: {}\n", ActionProcessPayment)
	fmt.Fprintf(&b, "- %s: the user asks what kinds of food exist. payload: {\"categories\": [...], \"has_offers\": true|false}\n", ActionListCategories)
	fmt.Fprintf(&b, "- %s: anything else, including greetings and questions about how to use the app. payload: {\"message\": \"<short helpful reply>\"}\n", ActionGuideUser)

	b.WriteString("\nRules:\n")
	b.WriteString("- Pick exactly one action.\n")
	fmt.Fprintf(&b, "- Only use %s with a category from the known list above; otherwise prefer %s.\n", ActionGetCategory, ActionSearch)
	fmt.Fprintf(&b, "- For %s, set \"categories\" to the known category list and \"has_offers\" to whether any deals exist.\n", ActionListCategories)
	b.WriteString("- Never invent fields beyond the payload shape given for the chosen action.\n")

	fmt.Fprintf(&b, "\nTranscript: %q\n", transcript)

	return Document(b.String())
}
