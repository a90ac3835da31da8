package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fadedpez/cardkit/internal/config"
	"github.com/fadedpez/cardkit/internal/logging"
	"github.com/fadedpez/cardkit/pkg/cards"
	"github.com/fadedpez/cardkit/pkg/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CLITestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	styler *MockStyler
	logBuf *bytes.Buffer
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	app    *app
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.styler = NewMockStyler(s.ctrl)
	s.logBuf = &bytes.Buffer{}
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
	s.app = &app{
		cfg:    config.Default(),
		logger: logging.NewLoggerTo(s.logBuf, logging.INFO),
		styler: s.styler,
	}
}

func (s *CLITestSuite) execute(args ...string) error {
	root := newRootCmd(s.app)
	root.SetOut(s.stdout)
	root.SetErr(s.stderr)
	root.SetArgs(args)
	return root.Execute()
}

func (s *CLITestSuite) TestDescribe() {
	// Setup
	s.styler.EXPECT().Paint(cards.Black, "♠\uFE0FQ").Return("<black>♠Q</black>")
	s.styler.EXPECT().Paint(cards.Red, "♦\uFE0F10").Return("<red>♦10</red>")

	// Execute
	err := s.execute("describe", "QS1", "TD")

	// Assert
	s.NoError(err, "Should describe valid cards")
	lines := strings.Split(strings.TrimSpace(s.stdout.String()), "\n")
	s.Require().Len(lines, 2)
	s.Equal([]string{"QS1", "QS", "queen", "of", "spades", "<black>♠Q</black>", "pack", "1", "black"}, strings.Fields(lines[0]))
	s.Equal([]string{"TD", "TD", "ten", "of", "diamonds", "<red>♦10</red>", "pack", "0", "red"}, strings.Fields(lines[1]))
	s.Empty(s.stderr.String())
}

func (s *CLITestSuite) TestDescribeTextVariant() {
	// Setup
	s.styler.EXPECT().Paint(cards.Red, "♥\uFE0EA").Return("♥A")

	// Execute
	err := s.execute("describe", "--variant", "text", "AH")

	// Assert
	s.NoError(err)
	s.Contains(s.stdout.String(), "ace of hearts")
}

func (s *CLITestSuite) TestDescribeInvalidName() {
	// Setup
	s.styler.EXPECT().Paint(gomock.Any(), gomock.Any()).DoAndReturn(func(_ cards.Color, text string) string {
		return text
	})

	// Execute
	err := s.execute("describe", "QS", "XX")

	// Assert
	s.Error(err, "Should fail when a name cannot be parsed")
	s.True(types.IsCardError(err, types.ErrInvalidCardName), "Should return InvalidCardName error")
	s.Contains(err.Error(), "1 of 2 card names")
	s.Contains(s.stdout.String(), "queen of spades", "Valid names should still be described")
	s.Contains(s.stderr.String(), "❌ XX")
	s.Contains(s.logBuf.String(), "Code: INVALID_CARD_NAME")
	s.Contains(s.logBuf.String(), "INVALID_RANK")
}

func (s *CLITestSuite) TestDescribeNeedsArgs() {
	s.Error(s.execute("describe"))
}

func (s *CLITestSuite) TestRanks() {
	// Execute
	err := s.execute("ranks")

	// Assert
	s.NoError(err)
	lines := strings.Split(strings.TrimSpace(s.stdout.String()), "\n")
	s.Require().Len(lines, 13, "Should list every rank")
	s.Equal([]string{"A", "A", "ace"}, strings.Fields(lines[0]))
	s.Equal([]string{"T", "10", "ten"}, strings.Fields(lines[9]))
	s.Equal([]string{"K", "K", "king"}, strings.Fields(lines[12]))
}

func (s *CLITestSuite) TestSuits() {
	// Setup
	s.styler.EXPECT().Paint(gomock.Any(), gomock.Any()).DoAndReturn(func(c cards.Color, text string) string {
		return "[" + c.String() + "]"
	}).Times(4)

	// Execute
	err := s.execute("suits")

	// Assert
	s.NoError(err)
	lines := strings.Split(strings.TrimSpace(s.stdout.String()), "\n")
	s.Require().Len(lines, 4)
	s.Equal([]string{"C", "[black]", "clubs", "black"}, strings.Fields(lines[0]))
	s.Equal([]string{"D", "[red]", "diamonds", "red"}, strings.Fields(lines[1]))
	s.Equal([]string{"H", "[red]", "hearts", "red"}, strings.Fields(lines[2]))
	s.Equal([]string{"S", "[black]", "spades", "black"}, strings.Fields(lines[3]))
}

func (s *CLITestSuite) TestPack() {
	// Setup
	s.app.styler = plainStyler{}

	// Execute
	err := s.execute("pack", "--packs", "2")

	// Assert
	s.NoError(err)
	lines := strings.Split(strings.TrimSpace(s.stdout.String()), "\n")
	s.Require().Len(lines, 8, "Two packs should print four suit rows each")
	s.Equal("AC 2C 3C 4C 5C 6C 7C 8C 9C TC JC QC KC", lines[0])
	s.Equal("AS1 2S1 3S1 4S1 5S1 6S1 7S1 8S1 9S1 TS1 JS1 QS1 KS1", lines[7])
}

func (s *CLITestSuite) TestPackUsesConfiguredCount() {
	// Setup
	s.app.styler = plainStyler{}
	s.app.cfg.Packs = 3

	// Execute
	err := s.execute("pack")

	// Assert
	s.NoError(err)
	s.Len(strings.Split(strings.TrimSpace(s.stdout.String()), "\n"), 12)
}

func (s *CLITestSuite) TestPackRejectsZero() {
	err := s.execute("pack", "-n", "0")
	s.True(types.IsCardError(err, types.ErrInvalidArgument))
}

func (s *CLITestSuite) TestPackRejectsHugeCount() {
	// Execute
	err := s.execute("pack", "-n", "4611686018427387903")

	// Assert
	s.True(types.IsCardError(err, types.ErrInvalidArgument), "Huge pack counts should be an error, not a panic")
	s.Empty(s.stdout.String())
}

func (s *CLITestSuite) TestInvalidVariantFlag() {
	err := s.execute("ranks", "--variant", "image")
	s.True(types.IsCardError(err, types.ErrInvalidArgument))
}

func (s *CLITestSuite) TestStylerFor() {
	testCases := []struct {
		name    string
		mode    string
		colored bool
		wantErr bool
	}{
		{name: "never", mode: config.ColorNever},
		{name: "always", mode: config.ColorAlways, colored: true},
		{name: "auto without terminal", mode: config.ColorAuto},
		{name: "unknown", mode: "rainbow", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Execute
			styler, err := stylerFor(tc.mode, &bytes.Buffer{})

			// Assert
			if tc.wantErr {
				s.True(types.IsCardError(err, types.ErrInvalidArgument))
				return
			}
			s.Require().NoError(err)
			painted := styler.Paint(cards.Red, "♥A")
			s.Contains(painted, "♥A")
			s.Equal(tc.colored, strings.Contains(painted, "\x1b["), "Escape codes should match the mode")
		})
	}
}

func (s *CLITestSuite) TestColorStyler() {
	styler := newColorStyler()

	s.Contains(styler.Paint(cards.Red, "x"), "\x1b[31;1m")
	s.Contains(styler.Paint(cards.Black, "x"), "\x1b[1m")
	s.Equal("x", styler.Paint(cards.NoColor, "x"))
}
