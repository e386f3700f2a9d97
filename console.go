package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

const appTitle = "Gobang Game"

// Console drives a local game on a terminal: it renders the board, parses
// coordinate input for human players and lets the AI take its turns. All
// moves originate here; spectator surfaces only observe.
type Console struct {
	controller *GameController
	hub        *Hub
	producer   *EventProducer
	in         *bufio.Reader
	out        io.Writer
}

func NewConsole(controller *GameController, hub *Hub, producer *EventProducer, in io.Reader, out io.Writer) *Console {
	return &Console{
		controller: controller,
		hub:        hub,
		producer:   producer,
		in:         bufio.NewReader(in),
		out:        out,
	}
}

// Run plays games until the player declines a rematch or quits. A nil
// mode or difficulty is prompted for interactively, once, and then reused
// for every rematch.
func (c *Console) Run(mode *GameMode, difficulty *Difficulty) error {
	settings := DefaultGameSettings()
	if mode == nil {
		chosen, err := c.promptMode()
		if err != nil {
			return err
		}
		mode = &chosen
	}
	settings.ApplyMode(*mode)
	if settings.Mode == ModePvAI {
		if difficulty == nil {
			chosen, err := c.promptDifficulty()
			if err != nil {
				return err
			}
			difficulty = &chosen
		}
		settings.Difficulty = *difficulty
	}

	for {
		c.controller.StartGame(settings)
		c.publishEvent(GameStartEvent(c.controller.GameID(), settings))
		c.publishStatus()
		if err := c.playOne(settings); err != nil {
			if err == errQuit {
				fmt.Fprintln(c.out, "Game over.")
				return nil
			}
			return err
		}
		again, err := c.promptYesNo("Play again? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}
	fmt.Fprintln(c.out, "Thanks for playing, goodbye!")
	return nil
}

var errQuit = fmt.Errorf("player quit")

func (c *Console) playOne(settings GameSettings) error {
	for {
		state := c.controller.State()
		c.clearScreen()
		fmt.Fprint(c.out, RenderBoard(state, settings))

		switch state.Status {
		case StatusBlackWon, StatusWhiteWon:
			winner := PlayerBlack
			if state.Status == StatusWhiteWon {
				winner = PlayerWhite
			}
			if settings.Mode == ModePvAI && !c.playerIsHumanColor(settings, winner) {
				fmt.Fprintln(c.out, "AI wins!")
			} else {
				fmt.Fprintf(c.out, "Player %s wins!\n", winner)
			}
			c.finishGame(state)
			return nil
		case StatusDraw:
			fmt.Fprintln(c.out, "It's a draw!")
			c.finishGame(state)
			return nil
		}

		if c.controller.CurrentPlayerIsHuman() {
			move, quit, err := c.readHumanMove(state, settings)
			if err != nil {
				return err
			}
			if quit {
				return errQuit
			}
			c.controller.SubmitHumanMove(move)
		}
		if c.controller.Tick() {
			if entry, ok := c.controller.LatestHistoryEntry(); ok {
				if entry.IsAi {
					fmt.Fprintf(c.out, "AI placed a move at (%d, %d)\n", entry.Move.Y, entry.Move.X)
				}
				c.publishEvent(MoveEvent(c.controller.GameID(), entry))
			}
			c.publishStatus()
		}
	}
}

func (c *Console) finishGame(state GameState) {
	c.publishEvent(GameEndEvent(c.controller.GameID(), state.Status, c.controller.History().Size()))
	c.publishStatus()
}

func (c *Console) playerIsHumanColor(settings GameSettings, color PlayerColor) bool {
	if color == PlayerBlack {
		return settings.BlackType == PlayerHuman
	}
	return settings.WhiteType == PlayerHuman
}

func (c *Console) readHumanMove(state GameState, settings GameSettings) (Move, bool, error) {
	for {
		fmt.Fprintf(c.out, "Player %s\n", state.ToMove)
		fmt.Fprint(c.out, "Enter move position, or 'q' to quit: ")
		line, err := c.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return Move{}, true, nil
			}
			return Move{}, false, err
		}
		move, quit, parseErr := ParseMoveInput(line, settings.BoardSize)
		if quit {
			return Move{}, true, nil
		}
		if parseErr != nil {
			fmt.Fprintf(c.out, "%s, please try again.\n", parseErr)
			continue
		}
		if !state.Board.IsEmpty(move.X, move.Y) {
			fmt.Fprintln(c.out, "Invalid move position, please try again.")
			continue
		}
		return move, false, nil
	}
}

// ParseMoveInput reads a "row col" pair of single coordinate characters:
// digits 0-9 then letters for 10 and up, case-insensitive. 'q' quits.
func ParseMoveInput(line string, boardSize int) (Move, bool, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) > 0 && strings.EqualFold(fields[0], "q") {
		return Move{}, true, nil
	}
	if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
		return Move{}, false, fmt.Errorf("invalid input, expected two coordinates")
	}
	row, err := coordFromByte(fields[0][0], boardSize)
	if err != nil {
		return Move{}, false, fmt.Errorf("invalid row coordinate")
	}
	col, err := coordFromByte(fields[1][0], boardSize)
	if err != nil {
		return Move{}, false, fmt.Errorf("invalid column coordinate")
	}
	return Move{X: col, Y: row}, false, nil
}

func coordFromByte(b byte, boardSize int) (int, error) {
	value := -1
	switch {
	case b >= '0' && b <= '9':
		value = int(b - '0')
	case b >= 'A' && b <= 'Z':
		value = 10 + int(b-'A')
	case b >= 'a' && b <= 'z':
		value = 10 + int(b-'a')
	}
	if value < 0 || value >= boardSize {
		return 0, fmt.Errorf("coordinate out of range")
	}
	return value, nil
}

func coordLabel(i int) string {
	if i < 10 {
		return fmt.Sprintf("%2d", i)
	}
	return fmt.Sprintf("%2c", 'A'+(i-10))
}

// RenderBoard draws the centered title banner, the labeled grid and, in
// AI mode, the difficulty footer. Winning stones are highlighted.
func RenderBoard(state GameState, settings GameSettings) string {
	var sb strings.Builder
	size := state.Board.Size()
	boardWidth := size*2 + 2
	titleWidth := len(appTitle)
	totalWidth := boardWidth
	if titleWidth > totalWidth {
		totalWidth = titleWidth
	}
	pad := strings.Repeat(" ", (totalWidth-titleWidth)/2)
	rule := strings.Repeat("-", titleWidth)

	sb.WriteString("\n")
	sb.WriteString(pad + rule + "\n")
	sb.WriteString(pad + appTitle + "\n")
	sb.WriteString(pad + rule + "\n")
	versionPad := strings.Repeat(" ", (totalWidth-len(appVersion)-1)/2)
	sb.WriteString(versionPad + "v" + appVersion + "\n\n")

	sb.WriteString("  ")
	for i := 0; i < size; i++ {
		sb.WriteString(coordLabel(i))
	}
	sb.WriteString("\n")

	winning := make(map[Move]bool, len(state.WinningLine))
	for _, cell := range state.WinningLine {
		winning[Move{X: cell.X, Y: cell.Y}] = true
	}
	for y := 0; y < size; y++ {
		sb.WriteString(coordLabel(y))
		for x := 0; x < size; x++ {
			sb.WriteString(" ")
			sb.WriteString(renderCell(state.Board.At(x, y), winning[Move{X: x, Y: y}]))
		}
		sb.WriteString("\n")
	}

	if settings.Mode == ModePvAI {
		sb.WriteString(fmt.Sprintf("\nAI Difficulty %s\n", settings.Difficulty))
	}
	return sb.String()
}

func renderCell(cell Cell, highlighted bool) string {
	switch cell {
	case CellBlack:
		if highlighted {
			return "◉"
		}
		return "●"
	case CellWhite:
		if highlighted {
			return "◎"
		}
		return "○"
	default:
		return "·"
	}
}

func (c *Console) promptMode() (GameMode, error) {
	for {
		fmt.Fprintln(c.out, "Select game mode:")
		fmt.Fprintln(c.out, "1. Player vs Player")
		fmt.Fprintln(c.out, "2. Player vs AI")
		choice, err := c.readChoice()
		if err != nil {
			return ModePvAI, err
		}
		switch choice {
		case "1":
			return ModePvP, nil
		case "2":
			return ModePvAI, nil
		}
		fmt.Fprintln(c.out, "Invalid choice, please try again.")
	}
}

func (c *Console) promptDifficulty() (Difficulty, error) {
	for {
		fmt.Fprintln(c.out, "Select AI difficulty:")
		fmt.Fprintln(c.out, "1. Easy")
		fmt.Fprintln(c.out, "2. Medium")
		fmt.Fprintln(c.out, "3. Hard")
		choice, err := c.readChoice()
		if err != nil {
			return DifficultyMedium, err
		}
		switch choice {
		case "1":
			return DifficultyEasy, nil
		case "2":
			return DifficultyMedium, nil
		case "3":
			return DifficultyHard, nil
		}
		fmt.Fprintln(c.out, "Invalid choice, please try again.")
	}
}

func (c *Console) promptYesNo(prompt string) (bool, error) {
	fmt.Fprint(c.out, prompt)
	choice, err := c.readChoice()
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(choice, "y"), nil
}

func (c *Console) readChoice() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) clearScreen() {
	fmt.Fprint(c.out, "\033[H\033[2J")
}

func (c *Console) publishStatus() {
	if c.hub == nil || !c.hub.HasClients() {
		return
	}
	c.hub.PublishStatus(controllerStatus(c.controller))
	if entry, ok := c.controller.LatestHistoryEntry(); ok {
		c.hub.PublishHistory(historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}})
	}
}

func (c *Console) publishEvent(event GameEvent) {
	if err := c.producer.SendEvent(event); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Msg("analytics event dropped")
	}
}
