package ports

import "context"

// LLMService es el puerto de salida hacia el modelo de lenguaje.
// La asesoría depende solo de este contrato; el adaptador concreto vive en infrastructure/ai.
// El contexto debe llevar un timeout: las llamadas externas pueden demorar varios segundos.
type LLMService interface {
	// Complete envía un prompt con instrucciones de sistema y devuelve el texto de la respuesta.
	Complete(ctx context.Context, system, prompt string) (string, error)
}
