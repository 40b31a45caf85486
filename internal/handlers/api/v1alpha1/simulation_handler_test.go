package v1alpha1_test

import (
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/rpg-combat-sim/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/rpg-combat-sim/internal/orchestrators/encounter/mock"
	"github.com/KirkDiggler/rpg-combat-sim/internal/partyconfig"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/presets"
	"github.com/KirkDiggler/rpg-combat-sim/internal/testutils"
)

type SimulationHandlerTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockService *encountermock.MockService
	handler     *v1alpha1.SimulationHandler
	partyDoc    map[string]any
}

func TestSimulationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationHandlerTestSuite))
}

func (s *SimulationHandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = encountermock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewSimulationHandler(&v1alpha1.SimulationHandlerConfig{Service: s.mockService})
	s.Require().NoError(err)
	s.handler = handler

	text, err := partyconfig.Export(testutils.CreateTestParty())
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal([]byte(text), &s.partyDoc))
}

func (s *SimulationHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SimulationHandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *SimulationHandlerTestSuite) storedRun(id string) *encounters.Run {
	return &encounters.Run{
		ID:        id,
		CreatedAt: testutils.TestCreatedAt,
		Seed:      1 << 60,
		Party:     testutils.CreateTestParty(),
		Result:    testutils.CreateTestResult(),
	}
}

func (s *SimulationHandlerTestSuite) TestNewSimulationHandlerRequiresService() {
	_, err := v1alpha1.NewSimulationHandler(&v1alpha1.SimulationHandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SimulationHandlerTestSuite) TestSimulate() {
	s.Run("passes party and seed", func() {
		seed := uint64(42)
		s.mockService.EXPECT().
			Simulate(s.ctx, &encounter.SimulateInput{Party: testutils.CreateTestParty(), Seed: &seed}).
			Return(&encounter.SimulateOutput{Run: s.storedRun("run_1")}, nil)

		resp, err := s.handler.Simulate(s.ctx, s.request(map[string]any{"party": s.partyDoc, "seed": 42}))
		s.Require().NoError(err)

		run := resp.GetFields()["run"].GetStructValue()
		s.Equal("run_1", run.GetFields()["runId"].GetStringValue())
		s.Equal("1152921504606846976", run.GetFields()["seed"].GetStringValue())
		result := run.GetFields()["result"].GetStructValue()
		s.Equal(120000.0, result.GetFields()["totalDamage"].GetNumberValue())
	})

	s.Run("string seed keeps full precision", func() {
		seed := uint64(18446744073709551615)
		s.mockService.EXPECT().
			Simulate(s.ctx, &encounter.SimulateInput{Party: testutils.CreateTestParty(), Seed: &seed}).
			Return(&encounter.SimulateOutput{Run: s.storedRun("run_2")}, nil)

		_, err := s.handler.Simulate(s.ctx, s.request(map[string]any{
			"party": s.partyDoc,
			"seed":  "18446744073709551615",
		}))
		s.Require().NoError(err)
	})

	s.Run("missing seed uses the default", func() {
		s.mockService.EXPECT().
			Simulate(s.ctx, &encounter.SimulateInput{Party: testutils.CreateTestParty()}).
			Return(&encounter.SimulateOutput{Run: s.storedRun("run_3")}, nil)

		_, err := s.handler.Simulate(s.ctx, s.request(map[string]any{"party": s.partyDoc}))
		s.Require().NoError(err)
	})

	s.Run("rejects bad input", func() {
		testCases := []struct {
			name   string
			fields map[string]any
		}{
			{name: "no party", fields: map[string]any{}},
			{name: "wrong version", fields: map[string]any{"party": map[string]any{"version": 3}}},
			{name: "negative seed", fields: map[string]any{"party": s.partyDoc, "seed": -1}},
			{name: "fractional seed", fields: map[string]any{"party": s.partyDoc, "seed": 1.5}},
			{name: "text seed", fields: map[string]any{"party": s.partyDoc, "seed": "abc"}},
		}
		for _, tc := range testCases {
			_, err := s.handler.Simulate(s.ctx, s.request(tc.fields))
			s.Equal(codes.InvalidArgument, status.Code(err), tc.name)
		}
	})

	s.Run("maps service errors", func() {
		s.mockService.EXPECT().
			Simulate(s.ctx, gomock.Any()).
			Return(nil, errors.NothingToSimulate())

		_, err := s.handler.Simulate(s.ctx, s.request(map[string]any{"party": s.partyDoc}))
		s.Require().Error(err)
		s.True(errors.IsNothingToSimulate(errors.FromGRPCError(err)))
	})
}

func (s *SimulationHandlerTestSuite) TestGetRun() {
	s.mockService.EXPECT().
		GetRun(s.ctx, &encounter.GetRunInput{RunID: "run_1"}).
		Return(&encounter.GetRunOutput{Run: s.storedRun("run_1")}, nil)

	resp, err := s.handler.GetRun(s.ctx, s.request(map[string]any{"runId": "run_1"}))
	s.Require().NoError(err)
	run := resp.GetFields()["run"].GetStructValue()
	s.Len(run.GetFields()["result"].GetStructValue().GetFields()["log"].GetListValue().GetValues(), 1)

	_, err = s.handler.GetRun(s.ctx, s.request(map[string]any{}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	s.mockService.EXPECT().
		GetRun(s.ctx, &encounter.GetRunInput{RunID: "gone"}).
		Return(nil, errors.NotFound("run gone not found"))
	_, err = s.handler.GetRun(s.ctx, s.request(map[string]any{"runId": "gone"}))
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *SimulationHandlerTestSuite) TestListRuns() {
	s.mockService.EXPECT().
		ListRuns(s.ctx, &encounter.ListRunsInput{Limit: 2}).
		Return(&encounter.ListRunsOutput{Runs: []*encounters.Run{s.storedRun("b"), s.storedRun("a")}}, nil)

	resp, err := s.handler.ListRuns(s.ctx, s.request(map[string]any{"limit": 2}))
	s.Require().NoError(err)

	runs := resp.GetFields()["runs"].GetListValue().GetValues()
	s.Require().Len(runs, 2)
	first := runs[0].GetStructValue().GetFields()
	s.Equal("b", first["runId"].GetStringValue())
	s.Equal(4.0, first["members"].GetNumberValue())
	s.NotContains(first, "result")
}

func (s *SimulationHandlerTestSuite) TestPresets() {
	s.mockService.EXPECT().
		SavePreset(s.ctx, &encounter.SavePresetInput{Name: "team", Party: testutils.CreateTestParty(), Overwrite: true}).
		Return(&encounter.SavePresetOutput{Preset: &presets.Preset{Name: "team"}}, nil)

	resp, err := s.handler.SavePreset(s.ctx, s.request(map[string]any{
		"name":      "team",
		"party":     s.partyDoc,
		"overwrite": true,
	}))
	s.Require().NoError(err)
	s.Equal("team", resp.GetFields()["name"].GetStringValue())

	s.mockService.EXPECT().
		SimulatePreset(s.ctx, &encounter.SimulatePresetInput{Name: "team"}).
		Return(nil, errors.FailedPrecondition("presets are not configured"))

	_, err = s.handler.SimulatePreset(s.ctx, s.request(map[string]any{"name": "team"}))
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

// TestServiceDescOverTheWire calls the handler through a real gRPC server
func (s *SimulationHandlerTestSuite) TestServiceDescOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterSimulationServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() {
		_ = conn.Close()
	}()

	s.mockService.EXPECT().
		GetRun(gomock.Any(), &encounter.GetRunInput{RunID: "run_1"}).
		Return(&encounter.GetRunOutput{Run: s.storedRun("run_1")}, nil)

	client := v1alpha1.NewSimulationServiceClient(conn)
	resp, err := client.GetRun(s.ctx, s.request(map[string]any{"runId": "run_1"}))
	s.Require().NoError(err)
	s.Equal("run_1", resp.GetFields()["run"].GetStructValue().GetFields()["runId"].GetStringValue())

	s.mockService.EXPECT().
		GetRun(gomock.Any(), &encounter.GetRunInput{RunID: "gone"}).
		Return(nil, errors.NotFound("run gone not found"))
	_, err = client.GetRun(s.ctx, s.request(map[string]any{"runId": "gone"}))
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}
