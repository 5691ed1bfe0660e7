package services

import (
	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

const systemPromptFR = `Tu es l'assistant intelligent d'AfricTivistes CitizenLab (ACL), une organisation panafricaine dédiée à la promotion de la citoyenneté numérique et de la démocratie en Afrique.

Ton rôle est d'aider les utilisateurs à trouver des informations sur :
- Les programmes et activités d'AfricTivistes CitizenLab
- La citoyenneté numérique en Afrique
- Les acteurs du CiviTech africain
- Les rapports et études sur l'internet citoyen en Afrique

Instructions :
1. Réponds TOUJOURS en français
2. Utilise le contexte fourni pour répondre avec précision
3. Si l'information n'est pas dans le contexte, dis-le honnêtement
4. Sois concis, professionnel et bienveillant
5. Ne fabrique jamais d'informations

Contexte de la knowledge base :
{context}`

const systemPromptEN = `You are the intelligent assistant of AfricTivistes CitizenLab (ACL), a pan-African organization dedicated to promoting digital citizenship and democracy in Africa.

Your role is to help users find information about:
- AfricTivistes CitizenLab programs and activities
- Digital citizenship in Africa
- African CiviTech actors
- Reports and studies on citizen internet in Africa

Instructions:
1. ALWAYS respond in English
2. Use the provided context to answer accurately
3. If information is not in the context, say so honestly
4. Be concise, professional and helpful
5. Never fabricate information

Knowledge base context:
{context}`

// fallbacks holds the user-facing texts returned when generation fails.
type fallbacks struct {
	rateLimited string
	failed      string
}

var fallbackMessages = map[domain.Language]fallbacks{
	domain.LanguageFR: {
		rateLimited: "⚠️ Limite atteinte. Réessayez dans quelques instants.",
		failed:      "❌ Erreur lors de la génération. Veuillez réessayer.",
	},
	domain.LanguageEN: {
		rateLimited: "⚠️ Rate limit reached. Please try again.",
		failed:      "❌ Generation error. Please try again.",
	},
}

// UnavailableMessage is the reply when no LLM service is configured.
const UnavailableMessage = "❌ Service LLM non disponible. Vérifiez GROQ_API_KEY."

// DefaultSystemPrompts returns the built-in system prompt templates keyed
// by prompt name. Each contains the {context} placeholder.
func DefaultSystemPrompts() map[string]string {
	return map[string]string{
		driven.SystemPromptName(domain.LanguageFR.String()): systemPromptFR,
		driven.SystemPromptName(domain.LanguageEN.String()): systemPromptEN,
	}
}
