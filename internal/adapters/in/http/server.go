// Package http exposes the rental service over a REST API. Request and
// response bodies use the Portuguese field names of the public contract;
// domain errors are translated to HTTP status codes in one place.
package http

import (
	"bytes"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rentmoto/internal/core/application/usecases/commands"
	"rentmoto/internal/core/application/usecases/queries"
	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/core/domain/model/rider"
	"rentmoto/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerMotorcycleHandler commands.RegisterMotorcycleCommandHandler
	renameMotorcycleHandler   commands.RenameMotorcycleCommandHandler
	changePlateHandler        commands.ChangeMotorcyclePlateCommandHandler
	deleteMotorcycleHandler   commands.DeleteMotorcycleCommandHandler
	registerRiderHandler      commands.RegisterRiderCommandHandler
	updateCNHPhotoHandler     commands.UpdateRiderCNHPhotoCommandHandler
	createRentalHandler       commands.CreateRentalCommandHandler
	returnRentalHandler       commands.ReturnRentalCommandHandler

	// Query handlers
	getMotorcyclesHandler queries.GetMotorcyclesQueryHandler
	getMotorcycleHandler  queries.GetMotorcycleQueryHandler
	getRentalHandler      queries.GetRentalQueryHandler
	previewReturnHandler  queries.PreviewReturnQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerMotorcycleHandler commands.RegisterMotorcycleCommandHandler,
	renameMotorcycleHandler commands.RenameMotorcycleCommandHandler,
	changePlateHandler commands.ChangeMotorcyclePlateCommandHandler,
	deleteMotorcycleHandler commands.DeleteMotorcycleCommandHandler,
	registerRiderHandler commands.RegisterRiderCommandHandler,
	updateCNHPhotoHandler commands.UpdateRiderCNHPhotoCommandHandler,
	createRentalHandler commands.CreateRentalCommandHandler,
	returnRentalHandler commands.ReturnRentalCommandHandler,
	getMotorcyclesHandler queries.GetMotorcyclesQueryHandler,
	getMotorcycleHandler queries.GetMotorcycleQueryHandler,
	getRentalHandler queries.GetRentalQueryHandler,
	previewReturnHandler queries.PreviewReturnQueryHandler,
) *Server {
	return &Server{
		registerMotorcycleHandler: registerMotorcycleHandler,
		renameMotorcycleHandler:   renameMotorcycleHandler,
		changePlateHandler:        changePlateHandler,
		deleteMotorcycleHandler:   deleteMotorcycleHandler,
		registerRiderHandler:      registerRiderHandler,
		updateCNHPhotoHandler:     updateCNHPhotoHandler,
		createRentalHandler:       createRentalHandler,
		returnRentalHandler:       returnRentalHandler,
		getMotorcyclesHandler:     getMotorcyclesHandler,
		getMotorcycleHandler:      getMotorcycleHandler,
		getRentalHandler:          getRentalHandler,
		previewReturnHandler:      previewReturnHandler,
	}
}

// RegisterRoutes wires the REST endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/motos", s.RegisterMotorcycle)
	e.GET("/motos", s.GetMotorcycles)
	e.GET("/motos/:id", s.GetMotorcycle)
	e.PUT("/motos/:id/modelo", s.RenameMotorcycle)
	e.PUT("/motos/:id/placa", s.ChangeMotorcyclePlate)
	e.DELETE("/motos/:id", s.DeleteMotorcycle)

	e.POST("/entregadores", s.RegisterRider)
	e.POST("/entregadores/:id/cnh", s.UpdateCNHPhoto)

	e.POST("/locacao", s.CreateRental)
	e.GET("/locacao/:id", s.GetRental)
	e.GET("/locacao/:id/devolucao", s.PreviewReturn)
	e.PUT("/locacao/:id/devolucao", s.ReturnRental)
}

// ErrorResponse is the error body shared by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"codigo"`
	Message string `json:"mensagem"`
}

// MotorcycleRequest is the registration body for a fleet unit.
type MotorcycleRequest struct {
	Identifier string `json:"identificador"`
	Year       int    `json:"ano"`
	Model      string `json:"modelo"`
	Plate      string `json:"placa"`
}

// MotorcycleResponse is the read model of a fleet unit.
type MotorcycleResponse struct {
	Identifier string    `json:"identificador"`
	Year       int       `json:"ano"`
	Model      string    `json:"modelo"`
	Plate      string    `json:"placa"`
	CreatedAt  time.Time `json:"data_criacao"`
}

// ModelUpdateRequest carries a replacement model name.
type ModelUpdateRequest struct {
	Model string `json:"modelo"`
}

// PlateUpdateRequest carries a replacement plate.
type PlateUpdateRequest struct {
	Plate string `json:"placa"`
}

// RiderRequest is the registration body for a delivery rider. The license
// photo is optional at registration and may be sent later through the
// dedicated endpoint.
type RiderRequest struct {
	Identifier string `json:"identificador"`
	Name       string `json:"nome"`
	CNPJ       string `json:"cnpj"`
	BirthDate  string `json:"data_nascimento"`
	CNHNumber  string `json:"numero_cnh"`
	CNHType    string `json:"tipo_cnh"`
	CNHPhoto   string `json:"imagem_cnh"`
}

// CNHPhotoRequest carries a base64-encoded license photo.
type CNHPhotoRequest struct {
	CNHPhoto string `json:"imagem_cnh"`
}

// RentalRequest is the body for opening a rental contract.
type RentalRequest struct {
	RiderID         string `json:"entregador_id"`
	MotorcycleID    string `json:"moto_id"`
	StartDate       string `json:"data_inicio"`
	EndDate         string `json:"data_termino"`
	ExpectedEndDate string `json:"data_previsao_termino"`
	PlanDays        int    `json:"plano"`
}

// RentalCreatedResponse carries the public identifier of a new rental.
type RentalCreatedResponse struct {
	Identifier string `json:"identificador"`
}

// RentalResponse is the read model of a rental contract.
type RentalResponse struct {
	Identifier      string          `json:"identificador"`
	RiderID         string          `json:"entregador_id"`
	MotorcycleID    string          `json:"moto_id"`
	DailyPrice      decimal.Decimal `json:"valor_diaria"`
	Total           decimal.Decimal `json:"valor_total"`
	StartDate       time.Time       `json:"data_inicio"`
	EndDate         time.Time       `json:"data_termino"`
	ExpectedEndDate time.Time       `json:"data_previsao_termino"`
	Active          bool            `json:"ativo"`
}

// ReturnRequest carries the actual or hypothetical return instant.
type ReturnRequest struct {
	ReturnDate string `json:"data_devolucao"`
}

// ReturnResponse is the itemized charge of a return or a return preview.
type ReturnResponse struct {
	Identifier string          `json:"identificador"`
	UsedDays   int             `json:"dias_utilizados"`
	UnusedDays int             `json:"dias_nao_utilizados"`
	ExtraDays  int             `json:"dias_extras"`
	DailyPrice decimal.Decimal `json:"valor_diaria"`
	BaseValue  decimal.Decimal `json:"valor_base"`
	Penalty    decimal.Decimal `json:"multa"`
	Extras     decimal.Decimal `json:"valor_extras"`
	Total      decimal.Decimal `json:"valor_total"`
}

// RegisterMotorcycle handles POST /motos - adds a unit to the fleet.
func (s *Server) RegisterMotorcycle(ctx echo.Context) error {
	var req MotorcycleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewID(req.Identifier)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRegisterMotorcycleCommand(id, req.Year, req.Model, req.Plate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.registerMotorcycleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetMotorcycles handles GET /motos - lists the fleet, optionally filtered
// by the "placa" query parameter.
func (s *Server) GetMotorcycles(ctx echo.Context) error {
	query := queries.NewGetMotorcyclesQuery(ctx.QueryParam("placa"))

	motos, err := s.getMotorcyclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]MotorcycleResponse, len(motos))
	for i, moto := range motos {
		response[i] = MotorcycleResponse{
			Identifier: moto.ID,
			Year:       moto.Year,
			Model:      moto.Model,
			Plate:      moto.Plate,
			CreatedAt:  moto.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMotorcycle handles GET /motos/:id - retrieves a single unit.
func (s *Server) GetMotorcycle(ctx echo.Context) error {
	id, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetMotorcycleQuery(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	moto, err := s.getMotorcycleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MotorcycleResponse{
		Identifier: moto.ID,
		Year:       moto.Year,
		Model:      moto.Model,
		Plate:      moto.Plate,
		CreatedAt:  moto.CreatedAt,
	})
}

// RenameMotorcycle handles PUT /motos/:id/modelo - replaces the model name.
func (s *Server) RenameMotorcycle(ctx echo.Context) error {
	var req ModelUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRenameMotorcycleCommand(id, req.Model)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.renameMotorcycleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeMotorcyclePlate handles PUT /motos/:id/placa - replaces the plate.
func (s *Server) ChangeMotorcyclePlate(ctx echo.Context) error {
	var req PlateUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewChangeMotorcyclePlateCommand(id, req.Plate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.changePlateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteMotorcycle handles DELETE /motos/:id - removes a unit that never
// had a rental.
func (s *Server) DeleteMotorcycle(ctx echo.Context) error {
	id, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewDeleteMotorcycleCommand(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.deleteMotorcycleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterRider handles POST /entregadores - registers a delivery rider.
// When the body carries a license photo it is stored right after the
// registration commits.
func (s *Server) RegisterRider(ctx echo.Context) error {
	var req RiderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewID(req.Identifier)
	if err != nil {
		return errorJSON(ctx, err)
	}

	birthDate, err := parseInstant("data_nascimento", req.BirthDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cnhType, err := rider.ParseCNHType(req.CNHType)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cnh, err := rider.NewCNH(cnhType, req.CNHNumber, "")
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRegisterRiderCommand(id, req.CNPJ, req.Name, birthDate, cnh)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.registerRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	if req.CNHPhoto != "" {
		if err := s.storeCNHPhoto(ctx, id, req.CNHPhoto); err != nil {
			return errorJSON(ctx, err)
		}
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCNHPhoto handles POST /entregadores/:id/cnh - replaces the license photo.
func (s *Server) UpdateCNHPhoto(ctx echo.Context) error {
	var req CNHPhotoRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.storeCNHPhoto(ctx, id, req.CNHPhoto); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateRental handles POST /locacao - opens a rental contract.
func (s *Server) CreateRental(ctx echo.Context) error {
	var req RentalRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.NewID(req.RiderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	motoID, err := kernel.NewID(req.MotorcycleID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	start, err := parseInstant("data_inicio", req.StartDate)
	if err != nil {
		return errorJSON(ctx, err)
	}
	end, err := parseInstant("data_termino", req.EndDate)
	if err != nil {
		return errorJSON(ctx, err)
	}
	expectedEnd, err := parseInstant("data_previsao_termino", req.ExpectedEndDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	plan, err := rental.ParsePlan(req.PlanDays)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateRentalCommand(riderID, motoID, start, end, expectedEnd, plan)
	if err != nil {
		return errorJSON(ctx, err)
	}

	identifier, err := s.createRentalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RentalCreatedResponse{Identifier: identifier})
}

// GetRental handles GET /locacao/:id - retrieves a rental contract.
func (s *Server) GetRental(ctx echo.Context) error {
	query, err := queries.NewGetRentalQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	rt, err := s.getRentalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RentalResponse{
		Identifier:      rt.Identifier,
		RiderID:         rt.RiderID,
		MotorcycleID:    rt.MotorcycleID,
		DailyPrice:      rt.DailyPrice,
		Total:           rt.Total,
		StartDate:       rt.StartDate,
		EndDate:         rt.EndDate,
		ExpectedEndDate: rt.ExpectedEndDate,
		Active:          rt.Active,
	})
}

// PreviewReturn handles GET /locacao/:id/devolucao - quotes the charge of
// returning at the instant given in the "data_devolucao" query parameter,
// without closing the rental.
func (s *Server) PreviewReturn(ctx echo.Context) error {
	returnDate, err := parseInstant("data_devolucao", ctx.QueryParam("data_devolucao"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewPreviewReturnQuery(ctx.Param("id"), returnDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	preview, err := s.previewReturnHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReturnResponse{
		Identifier: preview.Identifier,
		UsedDays:   preview.UsedDays,
		UnusedDays: preview.UnusedDays,
		ExtraDays:  preview.ExtraDays,
		DailyPrice: preview.DailyPrice,
		BaseValue:  preview.BaseValue,
		Penalty:    preview.Penalty,
		Extras:     preview.Extras,
		Total:      preview.Total,
	})
}

// ReturnRental handles PUT /locacao/:id/devolucao - closes a rental and
// settles the final charge.
func (s *Server) ReturnRental(ctx echo.Context) error {
	var req ReturnRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	rentalID, err := queries.ParseRentalIdentifier(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	returnDate, err := parseInstant("data_devolucao", req.ReturnDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewReturnRentalCommand(rentalID, returnDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	breakdown, err := s.returnRentalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReturnResponse{
		Identifier: queries.FormatRentalIdentifier(rentalID),
		UsedDays:   breakdown.UsedDays(),
		UnusedDays: breakdown.UnusedDays(),
		ExtraDays:  breakdown.ExtraDays(),
		DailyPrice: breakdown.DailyPrice(),
		BaseValue:  breakdown.BaseValue(),
		Penalty:    breakdown.Penalty(),
		Extras:     breakdown.Extras(),
		Total:      breakdown.Total(),
	})
}

// storeCNHPhoto decodes the base64 payload, derives the file type from the
// image magic bytes, and dispatches the photo update command.
func (s *Server) storeCNHPhoto(ctx echo.Context, riderID kernel.ID, encoded string) error {
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("imagem_cnh", err)
	}

	fileName, err := photoFileName(content)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRiderCNHPhotoCommand(riderID, content, fileName)
	if err != nil {
		return err
	}

	return s.updateCNHPhotoHandler.Handle(ctx.Request().Context(), cmd)
}

// photoFileName derives a file name from the image content. Only PNG and
// BMP payloads are accepted.
func photoFileName(content []byte) (string, error) {
	switch {
	case bytes.HasPrefix(content, []byte("\x89PNG\r\n\x1a\n")):
		return "cnh.png", nil
	case bytes.HasPrefix(content, []byte("BM")):
		return "cnh.bmp", nil
	default:
		return "", errs.NewValueIsInvalidError("imagem_cnh")
	}
}

// parseInstant accepts RFC 3339 instants and bare dates.
func parseInstant(paramName string, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError(paramName)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return t, nil
}

// errorJSON translates a domain error into the matching HTTP status code.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolated),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
