package lambda

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/diillson/aws-billing-report-go/internal/application/usecase"
	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/diillson/aws-billing-report-go/internal/shared/types"
	"github.com/rs/zerolog"
)

// Handler adapta o gatilho Lambda para o caso de uso do relatório.
type Handler struct {
	useCase *usecase.ReportUseCase
	logger  zerolog.Logger
}

// NewHandler cria um novo Handler.
func NewHandler(useCase *usecase.ReportUseCase, logger zerolog.Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle aceita o payload opaco do gatilho e dispara uma execução. Eventos
// SNS são reconhecidos e logados; qualquer outro payload só dispara a geração.
func (h *Handler) Handle(ctx context.Context, raw json.RawMessage) (entity.RunResult, error) {
	var event events.SNSEvent
	if err := json.Unmarshal(raw, &event); err == nil && len(event.Records) > 0 {
		h.logger.Info().
			Str("message", event.Records[0].SNS.Message).
			Msg("received SNS trigger")
	}

	result, err := h.useCase.Run(ctx)
	if errors.Is(err, types.ErrNoBillingData) {
		// Período sem dados não é falha da invocação: devolve o resumo
		// estruturado com status explícito em vez de um relatório vazio.
		return result, nil
	}
	return result, err
}

// Start bloqueia no runtime do Lambda até o shutdown da função.
func (h *Handler) Start() {
	awslambda.Start(h.Handle)
}
