package server

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	adminv1 "StableLedger/gen/go/stableledger/admin/v1"
	opsv1 "StableLedger/gen/go/stableledger/ops/v1"
	queryv1 "StableLedger/gen/go/stableledger/query/v1"
	"StableLedger/internal/core"
	"StableLedger/internal/ingestion"
	"StableLedger/internal/observability"
	"StableLedger/internal/persistence"
	"StableLedger/internal/projection"
	"StableLedger/internal/query"
	"StableLedger/internal/state"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
	logger        zerolog.Logger
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	Engine        *core.Engine
	Gateway       *ingestion.CommandGateway
	QueryService  *query.QueryService
	Snapshots     *persistence.SnapshotStore
	DB            *sql.DB
	HealthChecker *observability.HealthChecker
	StartTime     time.Time
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	opsv1.RegisterOpsServiceServer(grpcServer, &opsServiceImpl{
		engine:  deps.Engine,
		gateway: deps.Gateway,
	})
	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{
		engine: deps.Engine,
		qs:     deps.QueryService,
	})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		engine:    deps.Engine,
		gateway:   deps.Gateway,
		db:        deps.DB,
		snapshots: deps.Snapshots,
		qs:        deps.QueryService,
		startTime: deps.StartTime,
	})

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
		logger:        observability.NewLogger("server"),
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		s.logger.Info().Msg("gRPC server shutting down")
		s.grpcServer.GracefulStop()
	}()

	s.logger.Info().Str("addr", s.grpcAddr).Msg("gRPC server listening")
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served via gRPC-Gateway for tooling, dashboards, curl.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	if err := opsv1.RegisterOpsServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ops gateway: %w", err)
	}
	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info().Msg("HTTP gateway shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info().Str("addr", s.httpAddr).Str("grpc", s.grpcAddr).Msg("HTTP gateway listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// statusFromError maps engine error classes onto gRPC codes.
func statusFromError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ingestion.ErrDuplicateCommand):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, core.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, core.ErrState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, core.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, core.ErrSolvency):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, core.ErrAuthorization):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, core.ErrPaused):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

// parseOptionalDecimal treats an empty string as absent.
func parseOptionalDecimal(field, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := parseDecimal(field, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parsePositionID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "position_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid position_id: %v", err)
	}
	return id, nil
}

// ============================================================================
// OpsService gRPC implementation
// ============================================================================

type opsServiceImpl struct {
	opsv1.UnimplementedOpsServiceServer
	engine  *core.Engine
	gateway *ingestion.CommandGateway
}

func (s *opsServiceImpl) OpenPosition(ctx context.Context, req *opsv1.OpenPositionRequest) (*opsv1.OpenPositionResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	collateralAmount, err := parseDecimal("collateral_amount", req.CollateralAmount)
	if err != nil {
		return nil, err
	}
	mintAmount, err := parseDecimal("mint_amount", req.MintAmount)
	if err != nil {
		return nil, err
	}
	rate, err := parseDecimal("rate", req.Rate)
	if err != nil {
		return nil, err
	}

	var borrower *uuid.UUID
	if req.BorrowerId != "" {
		id, err := uuid.Parse(req.BorrowerId)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid borrower_id: %v", err)
		}
		borrower = &id
	}

	var opened state.Position
	err = s.gateway.Execute("PositionOpened", req.Ref, func() error {
		var opErr error
		opened, opErr = s.engine.OpenPosition(core.OpenPositionParams{
			Ref:              req.Ref,
			PositionID:       positionID,
			Collateral:       req.Collateral,
			CollateralAmount: collateralAmount,
			MintAmount:       mintAmount,
			RateWire:         rate,
			Borrower:         borrower,
		})
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &opsv1.OpenPositionResponse{
		PositionId:   opened.ID.String(),
		MintedAmount: mintAmount.String(),
		Ratio:        opened.Ratio.String(),
	}, nil
}

func (s *opsServiceImpl) ClosePosition(ctx context.Context, req *opsv1.ClosePositionRequest) (*opsv1.ClosePositionResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	payment, err := parseDecimal("payment", req.Payment)
	if err != nil {
		return nil, err
	}

	var change, released decimal.Decimal
	err = s.gateway.Execute("PositionClosed", req.Ref, func() error {
		var opErr error
		change, released, opErr = s.engine.ClosePosition(req.Ref, positionID, payment)
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &opsv1.ClosePositionResponse{
		Change:             change.String(),
		ReleasedCollateral: released.String(),
	}, nil
}

func (s *opsServiceImpl) TopUpCollateral(ctx context.Context, req *opsv1.TopUpCollateralRequest) (*opsv1.MutateResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("CollateralToppedUp", req.Ref, func() error {
		return s.engine.TopUpCollateral(req.Ref, positionID, amount)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.MutateResponse{Applied: true}, nil
}

func (s *opsServiceImpl) RemoveCollateral(ctx context.Context, req *opsv1.RemoveCollateralRequest) (*opsv1.MutateResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("CollateralRemoved", req.Ref, func() error {
		return s.engine.RemoveCollateral(req.Ref, positionID, amount)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.MutateResponse{Applied: true}, nil
}

func (s *opsServiceImpl) BorrowMore(ctx context.Context, req *opsv1.BorrowMoreRequest) (*opsv1.MutateResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("DebtBorrowed", req.Ref, func() error {
		return s.engine.BorrowMore(req.Ref, positionID, amount)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.MutateResponse{Applied: true}, nil
}

func (s *opsServiceImpl) RepayDebt(ctx context.Context, req *opsv1.RepayDebtRequest) (*opsv1.RepayDebtResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	payment, err := parseDecimal("payment", req.Payment)
	if err != nil {
		return nil, err
	}

	var change decimal.Decimal
	err = s.gateway.Execute("DebtRepaid", req.Ref, func() error {
		var opErr error
		change, opErr = s.engine.RepayDebt(req.Ref, positionID, payment)
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.RepayDebtResponse{Change: change.String()}, nil
}

func (s *opsServiceImpl) ChangeRate(ctx context.Context, req *opsv1.ChangeRateRequest) (*opsv1.MutateResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	newRate, err := parseDecimal("new_rate", req.NewRate)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("RateChanged", req.Ref, func() error {
		return s.engine.ChangeRate(req.Ref, positionID, newRate)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.MutateResponse{Applied: true}, nil
}

func (s *opsServiceImpl) TagIrredeemable(ctx context.Context, req *opsv1.TagIrredeemableRequest) (*opsv1.TagIrredeemableResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	var fee decimal.Decimal
	err = s.gateway.Execute("PositionTagged", req.Ref, func() error {
		var opErr error
		fee, opErr = s.engine.TagIrredeemable(req.Ref, positionID)
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.TagIrredeemableResponse{FeeMinted: fee.String()}, nil
}

func (s *opsServiceImpl) RetrieveLeftoverCollateral(ctx context.Context, req *opsv1.RetrieveLeftoverRequest) (*opsv1.RetrieveLeftoverResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	var amount decimal.Decimal
	err = s.gateway.Execute("LeftoverClaimed", req.Ref, func() error {
		var opErr error
		amount, opErr = s.engine.RetrieveLeftoverCollateral(req.Ref, positionID)
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.RetrieveLeftoverResponse{Amount: amount.String()}, nil
}

func (s *opsServiceImpl) BurnClosedPosition(ctx context.Context, req *opsv1.BurnClosedPositionRequest) (*opsv1.MutateResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("PositionBurned", req.Ref, func() error {
		return s.engine.BurnClosedPosition(req.Ref, positionID)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.MutateResponse{Applied: true}, nil
}

func (s *opsServiceImpl) Liquidate(ctx context.Context, req *opsv1.LiquidateRequest) (*opsv1.LiquidateResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}
	payment, err := parseDecimal("payment", req.Payment)
	if err != nil {
		return nil, err
	}
	priceOverride, err := parseOptionalDecimal("price_override", req.PriceOverride)
	if err != nil {
		return nil, err
	}

	var result core.LiquidationResult
	err = s.gateway.Execute("PositionLiquidated", req.Ref, func() error {
		var opErr error
		result, opErr = s.engine.Liquidate(core.LiquidateParams{
			Ref:           req.Ref,
			PositionID:    positionID,
			Payment:       payment,
			PriceOverride: priceOverride,
		})
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &opsv1.LiquidateResponse{
		Marked: result.Marked,
		Payout: result.Payout.String(),
		Change: result.Change.String(),
	}
	if result.Marked {
		resp.DeadlineUnix = result.Deadline.Unix()
	}
	return resp, nil
}

func (s *opsServiceImpl) CheckLiquidate(ctx context.Context, req *opsv1.CheckLiquidateRequest) (*opsv1.CheckLiquidateResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	liquidatable, err := s.engine.CheckLiquidate(req.Ref, positionID)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &opsv1.CheckLiquidateResponse{Liquidatable: liquidatable}, nil
}

func (s *opsServiceImpl) NextLiquidations(ctx context.Context, req *opsv1.NextLiquidationsRequest) (*opsv1.NextLiquidationsResponse, error) {
	if req.Collateral == "" {
		return nil, status.Error(codes.InvalidArgument, "collateral is required")
	}
	limit := int(req.Limit)
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	positions, err := s.engine.NextLiquidations(req.Collateral, limit)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &opsv1.NextLiquidationsResponse{}
	for _, p := range positions {
		resp.PositionIds = append(resp.PositionIds, p.ID.String())
	}
	return resp, nil
}

func (s *opsServiceImpl) Redeem(ctx context.Context, req *opsv1.RedeemRequest) (*opsv1.RedeemResponse, error) {
	if req.Collateral == "" {
		return nil, status.Error(codes.InvalidArgument, "collateral is required")
	}
	payment, err := parseDecimal("payment", req.Payment)
	if err != nil {
		return nil, err
	}

	feeOverride, err := parseOptionalDecimal("fee_override", req.FeeOverride)
	if err != nil {
		return nil, err
	}
	priceOverride, err := parseOptionalDecimal("price_override", req.PriceOverride)
	if err != nil {
		return nil, err
	}

	var result core.RedeemResult
	err = s.gateway.Execute("PositionRedeemed", req.Ref, func() error {
		var opErr error
		result, opErr = s.engine.Redeem(core.RedeemParams{
			Ref:           req.Ref,
			Collateral:    req.Collateral,
			Payment:       payment,
			MaxPositions:  int(req.MaxPositions),
			FeeOverride:   feeOverride,
			PriceOverride: priceOverride,
		})
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return redeemResponse(result), nil
}

func (s *opsServiceImpl) OptimalRedeem(ctx context.Context, req *opsv1.OptimalRedeemRequest) (*opsv1.RedeemResponse, error) {
	if len(req.Targets) == 0 {
		return nil, status.Error(codes.InvalidArgument, "targets are required")
	}
	targets := make(map[string]decimal.Decimal, len(req.Targets))
	for asset, raw := range req.Targets {
		target, err := parseDecimal("targets["+asset+"]", raw)
		if err != nil {
			return nil, err
		}
		targets[asset] = target
	}

	var result core.RedeemResult
	err := s.gateway.Execute("PositionRedeemed", req.Ref, func() error {
		var opErr error
		result, opErr = s.engine.OptimalBatchRedeem(req.Ref, targets, int(req.StepBudget))
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return redeemResponse(result), nil
}

func redeemResponse(result core.RedeemResult) *opsv1.RedeemResponse {
	resp := &opsv1.RedeemResponse{
		PaymentUsed:        result.PaymentUsed.String(),
		CollateralReceived: result.CollateralReceived.String(),
		FeeUsed:            result.FeeUsed.String(),
	}
	for _, id := range result.Positions {
		resp.PositionIds = append(resp.PositionIds, id.String())
	}
	return resp
}

func (s *opsServiceImpl) ChargeInterest(ctx context.Context, req *opsv1.ChargeInterestRequest) (*opsv1.ChargeInterestResponse, error) {
	if req.Collateral == "" {
		return nil, status.Error(codes.InvalidArgument, "collateral is required")
	}
	// Empty bounds default to the whole range, privileged tier included.
	var err error
	params := s.engine.Params()
	rateStart := state.PrivilegedWireRate
	if req.RateStart != "" {
		rateStart, err = parseDecimal("rate_start", req.RateStart)
		if err != nil {
			return nil, err
		}
	}
	rateEnd := params.MaxInterest.Add(params.InterestInterval)
	if req.RateEnd != "" {
		rateEnd, err = parseDecimal("rate_end", req.RateEnd)
		if err != nil {
			return nil, err
		}
	}
	substituteRate, err := parseDecimal("substitute_rate", req.SubstituteRate)
	if err != nil {
		return nil, err
	}

	var result core.InterestResult
	err = s.gateway.Execute("InterestCharged", req.Ref, func() error {
		var opErr error
		result, opErr = s.engine.ChargeInterest(req.Ref, req.Collateral, rateStart, rateEnd, substituteRate)
		return opErr
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &opsv1.ChargeInterestResponse{
		Minted:     result.Minted.String(),
		LowestRate: result.LowestRate.String(),
	}, nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	engine *core.Engine
	qs     *query.QueryService
}

func (s *queryServiceImpl) GetPosition(ctx context.Context, req *queryv1.GetPositionRequest) (*queryv1.GetPositionResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	p, err := s.qs.GetPosition(ctx, positionID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "get position: %v", err)
	}

	return &queryv1.GetPositionResponse{
		Position:     positionToProto(*p),
		AsOfSequence: p.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListPositions(ctx context.Context, req *queryv1.ListPositionsRequest) (*queryv1.ListPositionsResponse, error) {
	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var collateral, positionStatus *string
	if req.Collateral != "" {
		collateral = &req.Collateral
	}
	if req.Status != "" {
		positionStatus = &req.Status
	}

	positions, err := s.qs.ListPositions(ctx, collateral, positionStatus, pageSize)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list positions: %v", err)
	}

	resp := &queryv1.ListPositionsResponse{}
	for _, p := range positions {
		resp.Positions = append(resp.Positions, positionToProto(p))
		resp.AsOfSequence = p.AsOfSequence
	}
	return resp, nil
}

func positionToProto(p query.PositionResponse) *queryv1.Position {
	out := &queryv1.Position{
		PositionId:         p.PositionID.String(),
		Collateral:         p.Collateral,
		CollateralAmount:   p.CollateralAmount.String(),
		PoolDebt:           p.PoolDebt.String(),
		Ratio:              p.Ratio.String(),
		Rate:               p.Rate.String(),
		LastRateChangeUnix: p.LastRateChange.Unix(),
		Status:             p.Status,
		Version:            p.Version,
	}
	if p.BorrowerID != nil {
		out.BorrowerId = p.BorrowerID.String()
	}
	return out
}

func (s *queryServiceImpl) ListCollaterals(ctx context.Context, req *queryv1.ListCollateralsRequest) (*queryv1.ListCollateralsResponse, error) {
	collaterals, err := s.qs.ListCollaterals(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list collaterals: %v", err)
	}

	resp := &queryv1.ListCollateralsResponse{}
	for _, c := range collaterals {
		resp.Collaterals = append(resp.Collaterals, &queryv1.Collateral{
			Asset:           c.Asset,
			Mcr:             c.MCR.String(),
			UsdPrice:        c.USDPrice.String(),
			Accepted:        c.Accepted,
			TotalDebt:       c.TotalDebt.String(),
			TotalCollateral: c.TotalCollateral.String(),
		})
		resp.AsOfSequence = c.AsOfSequence
	}
	return resp, nil
}

func (s *queryServiceImpl) GetSystemAccounts(ctx context.Context, req *queryv1.GetSystemAccountsRequest) (*queryv1.GetSystemAccountsResponse, error) {
	if req.Collateral == "" {
		return nil, status.Error(codes.InvalidArgument, "collateral is required")
	}

	accounts, err := s.qs.GetSystemAccounts(ctx, req.Collateral)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "system accounts: %v", err)
	}

	return &queryv1.GetSystemAccountsResponse{
		Collateral:   accounts.Collateral,
		Vault:        accounts.Vault.String(),
		Leftovers:    accounts.Leftovers.String(),
		FeeEscrow:    accounts.FeeEscrow.String(),
		AsOfSequence: accounts.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetRedemptionQuote(ctx context.Context, req *queryv1.GetRedemptionQuoteRequest) (*queryv1.GetRedemptionQuoteResponse, error) {
	payment, err := parseDecimal("payment", req.Payment)
	if err != nil {
		return nil, err
	}

	fee := s.engine.RedemptionFeeQuote(payment)
	return &queryv1.GetRedemptionQuoteResponse{FeeFraction: fee.String()}, nil
}

func (s *queryServiceImpl) ListLiquidationHistory(ctx context.Context, req *queryv1.ListLiquidationHistoryRequest) (*queryv1.ListLiquidationHistoryResponse, error) {
	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var collateral *string
	if req.Collateral != "" {
		collateral = &req.Collateral
	}
	var afterSeq *int64
	if req.FromSequence > 0 {
		afterSeq = &req.FromSequence
	}

	history, err := s.qs.GetLiquidationHistory(ctx, collateral, pageSize, afterSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "liquidation history: %v", err)
	}

	resp := &queryv1.ListLiquidationHistoryResponse{}
	for _, h := range history {
		resp.Records = append(resp.Records, &queryv1.LiquidationRecord{
			Sequence:       h.Sequence,
			PositionId:     h.PositionID.String(),
			Collateral:     h.Collateral,
			DebtCovered:    h.DebtCovered.String(),
			Payout:         h.Payout.String(),
			Leftover:       h.Leftover.String(),
			OccurredAtUnix: h.OccurredAt.Unix(),
		})
	}
	return resp, nil
}

func (s *queryServiceImpl) ListRedemptionHistory(ctx context.Context, req *queryv1.ListRedemptionHistoryRequest) (*queryv1.ListRedemptionHistoryResponse, error) {
	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var collateral *string
	if req.Collateral != "" {
		collateral = &req.Collateral
	}
	var afterSeq *int64
	if req.FromSequence > 0 {
		afterSeq = &req.FromSequence
	}

	history, err := s.qs.GetRedemptionHistory(ctx, collateral, pageSize, afterSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "redemption history: %v", err)
	}

	resp := &queryv1.ListRedemptionHistoryResponse{}
	for _, h := range history {
		resp.Records = append(resp.Records, &queryv1.RedemptionRecord{
			Sequence:       h.Sequence,
			PositionId:     h.PositionID.String(),
			Collateral:     h.Collateral,
			PaymentUsed:    h.PaymentUsed.String(),
			CollateralPaid: h.CollateralPaid.String(),
			FeeUsed:        h.FeeUsed.String(),
			Full:           h.Full,
			OccurredAtUnix: h.OccurredAt.Unix(),
		})
	}
	return resp, nil
}

func (s *queryServiceImpl) ListJournals(ctx context.Context, req *queryv1.ListJournalsRequest) (*queryv1.ListJournalsResponse, error) {
	if req.AccountPrefix == "" {
		return nil, status.Error(codes.InvalidArgument, "account_prefix is required")
	}
	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var afterSeq *int64
	if req.FromSequence > 0 {
		afterSeq = &req.FromSequence
	}

	entries, err := s.qs.GetJournalHistory(ctx, req.AccountPrefix, pageSize, afterSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "journals: %v", err)
	}

	resp := &queryv1.ListJournalsResponse{}
	for _, e := range entries {
		resp.Journals = append(resp.Journals, &queryv1.JournalRecord{
			JournalId:     e.JournalID,
			BatchId:       e.BatchID,
			EventRef:      e.EventRef,
			Sequence:      e.Sequence,
			DebitAccount:  e.DebitAccount,
			CreditAccount: e.CreditAccount,
			Asset:         e.Asset,
			Amount:        e.Amount,
			JournalType:   e.JournalType,
			TimestampUs:   e.Timestamp,
		})
	}
	return resp, nil
}

func (s *queryServiceImpl) GetMarkedDeadline(ctx context.Context, req *queryv1.GetMarkedDeadlineRequest) (*queryv1.GetMarkedDeadlineResponse, error) {
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	deadline, marked, err := s.engine.MarkedDeadline(positionID)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &queryv1.GetMarkedDeadlineResponse{Marked: marked}
	if marked {
		resp.DeadlineUnix = deadline.Unix()
	}
	return resp, nil
}

func (s *queryServiceImpl) ListRatioBuckets(ctx context.Context, req *queryv1.ListRatioBucketsRequest) (*queryv1.ListRatioBucketsResponse, error) {
	if req.Collateral == "" {
		return nil, status.Error(codes.InvalidArgument, "collateral is required")
	}
	rateWire, err := parseDecimal("rate", req.Rate)
	if err != nil {
		return nil, err
	}
	from := decimal.Zero
	if req.RatioFrom != "" {
		from, err = parseDecimal("ratio_from", req.RatioFrom)
		if err != nil {
			return nil, err
		}
	}
	to, err := parseOptionalDecimal("ratio_to", req.RatioTo)
	if err != nil {
		return nil, err
	}

	buckets, err := s.engine.RatioBuckets(req.Collateral, rateWire, from, to)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &queryv1.ListRatioBucketsResponse{}
	for _, b := range buckets {
		bucket := &queryv1.RatioBucket{Ratio: b.Ratio.String()}
		for _, id := range b.IDs {
			bucket.PositionIds = append(bucket.PositionIds, id.String())
		}
		resp.Buckets = append(resp.Buckets, bucket)
	}
	return resp, nil
}

func (s *queryServiceImpl) GetSystemStatus(ctx context.Context, req *queryv1.GetSystemStatusRequest) (*queryv1.GetSystemStatusResponse, error) {
	return &queryv1.GetSystemStatusResponse{
		Sequence:          s.engine.Sequence(),
		CirculatingSupply: s.engine.CirculatingSupply().String(),
		State:             "ready",
	}, nil
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	engine    *core.Engine
	gateway   *ingestion.CommandGateway
	db        *sql.DB
	snapshots *persistence.SnapshotStore
	qs        *query.QueryService
	startTime time.Time
}

func (s *adminServiceImpl) CreateCollateral(ctx context.Context, req *adminv1.CreateCollateralRequest) (*adminv1.AdminMutateResponse, error) {
	mcr, err := parseDecimal("mcr", req.Mcr)
	if err != nil {
		return nil, err
	}
	price, err := parseDecimal("usd_price", req.UsdPrice)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("CollateralCreated", req.Ref, func() error {
		return s.engine.CreateCollateral(req.Ref, req.Asset, mcr, price, req.Accepted)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) EditCollateral(ctx context.Context, req *adminv1.EditCollateralRequest) (*adminv1.AdminMutateResponse, error) {
	mcr, err := parseDecimal("mcr", req.Mcr)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("CollateralEdited", req.Ref, func() error {
		return s.engine.EditCollateral(req.Ref, req.Asset, mcr, req.Accepted)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) SetPrice(ctx context.Context, req *adminv1.SetPriceRequest) (*adminv1.AdminMutateResponse, error) {
	price, err := parseDecimal("usd_price", req.UsdPrice)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("PriceUpdated", req.Ref, func() error {
		return s.engine.SetPrice(req.Ref, req.Asset, price)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) SetParameters(ctx context.Context, req *adminv1.SetParametersRequest) (*adminv1.AdminMutateResponse, error) {
	if req.Params == nil {
		return nil, status.Error(codes.InvalidArgument, "params is required")
	}

	params, err := paramsFromProto(req.Params)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("ParamsUpdated", req.Ref, func() error {
		return s.engine.SetParameters(req.Ref, params)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func paramsFromProto(p *adminv1.ProtocolParams) (state.ProtocolParameters, error) {
	out := state.ProtocolParameters{
		MaxBucketLength:           p.MaxBucketLength,
		DaysOfExtraInterestFee:    p.DaysOfExtraInterestFee,
		FeelessRateChangeCooldown: p.FeelessRateChangeCooldownDays,
	}

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"minimum_mint", p.MinimumMint, &out.MinimumMint},
		{"liquidation_fine", p.LiquidationFine, &out.LiquidationFine},
		{"max_interest", p.MaxInterest, &out.MaxInterest},
		{"interest_interval", p.InterestInterval, &out.InterestInterval},
		{"redemption_halflife_k", p.RedemptionHalflifeK, &out.RedemptionHalflifeK},
		{"redemption_spike_k", p.RedemptionSpikeK, &out.RedemptionSpikeK},
		{"minimum_redemption_fee", p.MinimumRedemptionFee, &out.MinimumRedemptionFee},
		{"maximum_redemption_fee", p.MaximumRedemptionFee, &out.MaximumRedemptionFee},
		{"irredeemable_tag_fee", p.IrredeemableTagFee, &out.IrredeemableTagFee},
		{"liquidation_notice_fee", p.LiquidationNoticeFee, &out.LiquidationNoticeFee},
	}

	for _, f := range fields {
		d, err := parseDecimal(f.name, f.raw)
		if err != nil {
			return state.ProtocolParameters{}, err
		}
		*f.dst = d
	}

	return out, nil
}

func (s *adminServiceImpl) SetStops(ctx context.Context, req *adminv1.SetStopsRequest) (*adminv1.AdminMutateResponse, error) {
	err := s.gateway.Execute("ParamsUpdated", req.Ref, func() error {
		return s.engine.SetStops(req.Ref, req.StopLiquidations, req.StopOpenings, req.StopClosings, req.StopRedemption)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func borrowerParamsFromProto(req *adminv1.BorrowerRequest) (core.BorrowerParams, error) {
	borrowerID, err := uuid.Parse(req.BorrowerId)
	if err != nil {
		return core.BorrowerParams{}, status.Errorf(codes.InvalidArgument, "invalid borrower_id: %v", err)
	}

	params := core.BorrowerParams{
		Ref:              req.Ref,
		BorrowerID:       borrowerID,
		RedemptionOptOut: req.RedemptionOptOut,
		MaxCoupled:       req.MaxCoupled,
	}
	if req.NoticeMinutes > 0 {
		minutes := req.NoticeMinutes
		params.NoticeMinutes = &minutes
	}
	return params, nil
}

func (s *adminServiceImpl) CreateBorrower(ctx context.Context, req *adminv1.BorrowerRequest) (*adminv1.AdminMutateResponse, error) {
	params, err := borrowerParamsFromProto(req)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("BorrowerCreated", req.Ref, func() error {
		return s.engine.CreateBorrower(params)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) EditBorrower(ctx context.Context, req *adminv1.BorrowerRequest) (*adminv1.AdminMutateResponse, error) {
	params, err := borrowerParamsFromProto(req)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("BorrowerEdited", req.Ref, func() error {
		return s.engine.EditBorrower(params)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) LinkBorrower(ctx context.Context, req *adminv1.LinkBorrowerRequest) (*adminv1.AdminMutateResponse, error) {
	borrowerID, err := uuid.Parse(req.BorrowerId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid borrower_id: %v", err)
	}
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("BorrowerLinked", req.Ref, func() error {
		return s.engine.LinkBorrower(req.Ref, borrowerID, positionID)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) UnlinkBorrower(ctx context.Context, req *adminv1.LinkBorrowerRequest) (*adminv1.AdminMutateResponse, error) {
	borrowerID, err := uuid.Parse(req.BorrowerId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid borrower_id: %v", err)
	}
	positionID, err := parsePositionID(req.PositionId)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("BorrowerUnlinked", req.Ref, func() error {
		return s.engine.UnlinkBorrower(req.Ref, borrowerID, positionID)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) FreeMint(ctx context.Context, req *adminv1.SupplyRequest) (*adminv1.AdminMutateResponse, error) {
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("SupplyMinted", req.Ref, func() error {
		return s.engine.FreeMint(req.Ref, amount)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) BurnSupply(ctx context.Context, req *adminv1.SupplyRequest) (*adminv1.AdminMutateResponse, error) {
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	err = s.gateway.Execute("SupplyBurned", req.Ref, func() error {
		return s.engine.BurnSupply(req.Ref, amount)
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &adminv1.AdminMutateResponse{Applied: true}, nil
}

func (s *adminServiceImpl) TakeSnapshot(ctx context.Context, req *adminv1.TakeSnapshotRequest) (*adminv1.TakeSnapshotResponse, error) {
	snap := s.engine.Snapshot()

	stateHash, err := hex.DecodeString(snap.PrevHash)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "decode state hash: %v", err)
	}

	if err := s.snapshots.SaveSnapshot(ctx, snap.Sequence, stateHash, snap); err != nil {
		return nil, status.Errorf(codes.Internal, "save snapshot: %v", err)
	}

	return &adminv1.TakeSnapshotResponse{Sequence: snap.Sequence}, nil
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := projection.RebuildProjections(ctx, s.db); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{Started: true}, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.qs.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed: report.IsHealthy,
	}
	if !report.IsHealthy {
		if len(report.HashChainBreaks) > 0 {
			resp.FirstMismatchSequence = report.HashChainBreaks[0]
		}
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, %d unbalanced assets",
			len(report.HashChainBreaks), len(report.UnbalancedAssets))
	}
	return resp, nil
}

func (s *adminServiceImpl) GetEventLogInfo(ctx context.Context, req *adminv1.GetEventLogInfoRequest) (*adminv1.GetEventLogInfoResponse, error) {
	latestSeq, err := s.snapshots.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}
	return &adminv1.GetEventLogInfoResponse{LastSequence: latestSeq}, nil
}
