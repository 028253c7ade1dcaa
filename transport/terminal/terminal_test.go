package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/testing/suite"
)

func runTerminal(t *testing.T, human entity.Mark, input string) string {
	t.Helper()

	ctx, st := suite.New(t, human, entity.HardDifficulty)
	manager := usecase.NewGameManager(st.Logger, st.Config, tictactoe.NewRandomSelector())

	var out bytes.Buffer
	terminal := New(st.Logger, manager, strings.NewReader(input), &out, termenv.WithProfile(termenv.Ascii))

	require.NoError(t, terminal.Run(ctx))

	return out.String()
}

func TestTerminal_Run(t *testing.T) {
	t.Run("Draws the empty board with cell numbers", func(t *testing.T) {
		// When: quitting straight away
		out := runTerminal(t, entity.PlayerX, "q\n")

		// Then: the numbered board, status and score are shown
		assert.Contains(t, out, " 1 | 2 | 3 \n---+---+---\n 4 | 5 | 6 \n---+---+---\n 7 | 8 | 9 ")
		assert.Contains(t, out, "You are X, your move")
		assert.Contains(t, out, "difficulty: hard  wins: 0  losses: 0  draws: 0")
	})

	t.Run("Plays a move and shows the computer's reply", func(t *testing.T) {
		// When: the human takes the top-left corner
		out := runTerminal(t, entity.PlayerX, "1\nq\n")

		// Then: minimax answers in the centre
		assert.Contains(t, out, " X | 2 | 3 \n---+---+---\n 4 | O | 6 ")
	})

	t.Run("Computer opens when the human plays O", func(t *testing.T) {
		// When: quitting straight away as O
		out := runTerminal(t, entity.PlayerO, "q\n")

		// Then: X already holds the first cell
		assert.Contains(t, out, " X | 2 | 3 ")
		assert.Contains(t, out, "You are O, your move")
	})

	t.Run("Reports an occupied cell", func(t *testing.T) {
		out := runTerminal(t, entity.PlayerX, "1\n1\nq\n")

		assert.Contains(t, out, "that cell is already taken")
	})

	t.Run("Reports a cell outside the board", func(t *testing.T) {
		out := runTerminal(t, entity.PlayerX, "10\nq\n")

		assert.Contains(t, out, "pick a cell from 1 to 9")
	})

	t.Run("Reports an unknown command", func(t *testing.T) {
		out := runTerminal(t, entity.PlayerX, "hello\nq\n")

		assert.Contains(t, out, "unknown command, press h for help")
	})

	t.Run("Changes difficulty", func(t *testing.T) {
		out := runTerminal(t, entity.PlayerX, "d easy\nq\n")

		assert.Contains(t, out, "difficulty: easy  wins: 0")
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		out := runTerminal(t, entity.PlayerX, "d nightmare\nd\nq\n")

		assert.Contains(t, out, "difficulty must be easy, medium or hard")
		assert.Contains(t, out, "unknown command, press h for help")
	})

	t.Run("Stops at the end of input", func(t *testing.T) {
		out := runTerminal(t, entity.PlayerX, "\n  \nr\ns\nh")

		assert.Equal(t, 2, strings.Count(out, "q          quit"))
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		// Given: a cancelled context
		suiteCtx, st := suite.New(t, entity.PlayerX, entity.EasyDifficulty)
		manager := usecase.NewGameManager(st.Logger, st.Config, tictactoe.NewRandomSelector())
		ctx, cancel := context.WithCancel(suiteCtx)
		cancel()

		// When: running with input that never quits
		terminal := New(st.Logger, manager, strings.NewReader("1\n2\n"), io.Discard)

		// Then: Run returns without error
		require.NoError(t, terminal.Run(ctx))
	})
}

func TestTerminal_RenderFinishedGame(t *testing.T) {
	// Given: a game the computer has won on the middle row
	_, st := suite.New(t, entity.PlayerX, entity.MediumDifficulty)
	var out bytes.Buffer
	terminal := New(st.Logger, nil, strings.NewReader(""), &out, termenv.WithProfile(termenv.Ascii))

	game := entity.NewGame("1", entity.PlayerX, entity.MediumDifficulty)
	game.Board = entity.Board{
		entity.PlayerX, "", "",
		entity.PlayerO, entity.PlayerO, entity.PlayerO,
		entity.PlayerX, "", entity.PlayerX,
	}
	game.UpdateGameState()

	// When: rendering it
	terminal.render(usecase.GameState{Game: *game, Score: entity.Score{Losses: 1}})

	// Then: the loss and the tally are shown
	assert.Contains(t, out.String(), " O | O | O ")
	assert.Contains(t, out.String(), "Computer wins!")
	assert.Contains(t, out.String(), "wins: 0  losses: 1  draws: 0")
}
