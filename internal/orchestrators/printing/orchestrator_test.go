package printing_test

import (
	"context"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	inferencemock "github.com/KirkDiggler/card-forge/internal/clients/inference/mock"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/printing"
	"github.com/KirkDiggler/card-forge/internal/renderer"
	renderermock "github.com/KirkDiggler/card-forge/internal/renderer/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	artwork      *inferencemock.MockClient
	renderer     *renderermock.MockRenderer
	orchestrator printing.Service
	ctx          context.Context
	creatures    []*cards.Creature
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.artwork = inferencemock.NewMockClient(s.ctrl)
	s.renderer = renderermock.NewMockRenderer(s.ctrl)
	s.ctx = context.Background()

	o, err := printing.NewOrchestrator(&printing.Config{
		Artwork:  s.artwork,
		Renderer: s.renderer,
		Timeout:  time.Second,
	})
	s.Require().NoError(err)
	s.orchestrator = o

	s.creatures = []*cards.Creature{
		{ID: "card_1", Name: "Emberling", ArtworkPrompt: "prompt one"},
		{ID: "card_2", Name: "Emberlord", ArtworkPrompt: "prompt two"},
		{ID: "card_3", Name: "Embertitan", ArtworkPrompt: "prompt three"},
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func canvas(w int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, 1))
}

func (s *OrchestratorTestSuite) expectRenderPassthrough() {
	s.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *renderer.RenderInput) (*renderer.RenderOutput, error) {
			return &renderer.RenderOutput{Image: input.Artwork}, nil
		}).AnyTimes()
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *printing.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing artwork", cfg: &printing.Config{Renderer: s.renderer}},
		{name: "missing renderer", cfg: &printing.Config{Artwork: s.artwork}},
		{name: "negative timeout", cfg: &printing.Config{Artwork: s.artwork, Renderer: s.renderer, Timeout: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := printing.NewOrchestrator(tc.cfg)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestPrintSeriesKeepsOrder() {
	s.artwork.EXPECT().GenerateImage(gomock.Any(), "prompt one").Return(canvas(1), nil)
	s.artwork.EXPECT().GenerateImage(gomock.Any(), "prompt two").Return(canvas(2), nil)
	s.artwork.EXPECT().GenerateImage(gomock.Any(), "prompt three").Return(canvas(3), nil)
	s.expectRenderPassthrough()

	out, err := s.orchestrator.PrintSeries(s.ctx, &printing.PrintSeriesInput{Creatures: s.creatures})
	s.Require().NoError(err)
	s.Require().Len(out.Cards, 3)

	for i, card := range out.Cards {
		s.Equal(s.creatures[i], card.Creature)
		s.Equal(i+1, card.Image.Bounds().Dx())
	}
}

func (s *OrchestratorTestSuite) TestPrintSeriesDropsFailedCards() {
	s.artwork.EXPECT().GenerateImage(gomock.Any(), "prompt one").Return(canvas(1), nil)
	s.artwork.EXPECT().GenerateImage(gomock.Any(), "prompt two").
		Return(nil, errors.Unavailable("model loading"))
	s.artwork.EXPECT().GenerateImage(gomock.Any(), "prompt three").Return(canvas(3), nil)
	s.expectRenderPassthrough()

	var done, failed atomic.Int32
	out, err := s.orchestrator.PrintSeries(s.ctx, &printing.PrintSeriesInput{
		Creatures: s.creatures,
		OnPrinted: func(_ *cards.Creature, err error) {
			done.Add(1)
			if err != nil {
				failed.Add(1)
			}
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Cards, 2)
	s.Equal("card_1", out.Cards[0].Creature.ID)
	s.Equal("card_3", out.Cards[1].Creature.ID)
	s.Equal(int32(3), done.Load())
	s.Equal(int32(1), failed.Load())
}

func (s *OrchestratorTestSuite) TestPrintSeriesDropsRenderFailures() {
	s.artwork.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).Return(canvas(1), nil)
	s.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("template not found"))

	out, err := s.orchestrator.PrintSeries(s.ctx, &printing.PrintSeriesInput{
		Creatures: s.creatures[:1],
	})
	s.Require().NoError(err)
	s.Empty(out.Cards)
}

func (s *OrchestratorTestSuite) TestPrintSeriesAppliesTimeout() {
	s.artwork.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (image.Image, error) {
			deadline, ok := ctx.Deadline()
			s.True(ok)
			s.WithinDuration(time.Now().Add(time.Second), deadline, time.Second)
			return canvas(1), nil
		})
	s.expectRenderPassthrough()

	out, err := s.orchestrator.PrintSeries(s.ctx, &printing.PrintSeriesInput{
		Creatures: s.creatures[:1],
	})
	s.Require().NoError(err)
	s.Len(out.Cards, 1)
}

func (s *OrchestratorTestSuite) TestPrintSeriesCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.artwork.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).
		Return(nil, context.Canceled).AnyTimes()

	out, err := s.orchestrator.PrintSeries(ctx, &printing.PrintSeriesInput{Creatures: s.creatures})
	s.Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
	s.Require().NotNil(out)
	s.Empty(out.Cards)
}

func (s *OrchestratorTestSuite) TestPrintSeriesCanceledKeepsFinishedCards() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	firstDone := make(chan struct{})

	s.artwork.EXPECT().GenerateImage(gomock.Any(), "prompt one").Return(canvas(1), nil)
	s.artwork.EXPECT().GenerateImage(gomock.Any(), "prompt two").DoAndReturn(
		func(ctx context.Context, _ string) (image.Image, error) {
			<-firstDone
			cancel()
			return nil, ctx.Err()
		})
	s.expectRenderPassthrough()

	out, err := s.orchestrator.PrintSeries(ctx, &printing.PrintSeriesInput{
		Creatures: s.creatures[:2],
		OnPrinted: func(creature *cards.Creature, _ error) {
			if creature.ID == "card_1" {
				close(firstDone)
			}
		},
	})
	s.Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
	s.Require().NotNil(out)
	s.Require().Len(out.Cards, 1)
	s.Equal("card_1", out.Cards[0].Creature.ID)
}

func (s *OrchestratorTestSuite) TestPrintSeriesEmpty() {
	out, err := s.orchestrator.PrintSeries(s.ctx, &printing.PrintSeriesInput{})
	s.Require().NoError(err)
	s.Empty(out.Cards)

	_, err = s.orchestrator.PrintSeries(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
