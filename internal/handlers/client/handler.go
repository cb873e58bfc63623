package client

import (
	"healthtick/infras/otel"
	"healthtick/internal/domains/client/model"
	"healthtick/internal/domains/client/service"
	"healthtick/shared/constant"
	gDto "healthtick/shared/dto"
	"healthtick/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Client
	otel    otel.Otel
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/{id}", handler.GetClientByID)
	})
}

// GetClients retrieves all clients based on query parameters.
// @Summary Get all clients
// @Description Retrieve all clients with optional name filtering and pagination.
// @Tags Client
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name (case insensitive substring)"
// @Success 200 {object} response.Data[dto.GetClientsResponse] "List of clients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [get]
func (handler *Handler) GetClients(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	name := request.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    "%" + name + "%",
			Table:    model.TableName,
		})
	}

	clients, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Clients retrieved successfully")

	response.WithJSON(writer, http.StatusOK, clients)
}

// GetClientByID retrieves a single client.
// @Summary Get a client
// @Description Retrieve one client by id.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.Data[dto.ClientResponse] "Client"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [get]
func (handler *Handler) GetClientByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get client")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Client retrieved successfully")

	response.WithJSON(writer, http.StatusOK, client)
}
