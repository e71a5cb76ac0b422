// Command textboard plays the same hot-seat game in a terminal. Each
// square typed ("e2") counts as one click on that square.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dulchik/hotseat-chess/rules"
)

func main() {
	if err := play(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func play(in io.Reader, out io.Writer) error {
	game := rules.NewGame()
	scanner := bufio.NewScanner(in)

	printBoard(out, game)
	fmt.Fprintf(out, "%s to move: ", game.Turn())

	for scanner.Scan() {
		for _, field := range strings.Fields(scanner.Text()) {
			sq, err := rules.ParseSquare(field)
			if err != nil {
				fmt.Fprintln(out, "Invalid square:", err)
				continue
			}

			mover := game.Turn()
			from, _ := game.Selection()
			switch game.HandleSquareClicked(sq) {
			case rules.ClickMoved:
				b := game.Board()
				log.Printf("%s %s-%s  board %s", mover, from, sq, b.FEN())
				printBoard(out, game)
			case rules.ClickSelected:
				fmt.Fprintf(out, "%s selected, targets: %s\n", sq, joinSquares(game.LegalDestinations()))
			case rules.ClickCleared:
				fmt.Fprintln(out, "Selection cleared")
			case rules.ClickIgnored:
				fmt.Fprintln(out, "Not your piece")
			}
		}
		fmt.Fprintf(out, "%s to move: ", game.Turn())
	}
	return scanner.Err()
}

func joinSquares(sqs []rules.Square) string {
	if len(sqs) == 0 {
		return "none"
	}
	names := make([]string, len(sqs))
	for i, sq := range sqs {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}

// printBoard draws rank 8 at the top. Cached destinations are shown as '*'.
func printBoard(out io.Writer, game *rules.Game) {
	b := game.Board()
	for row := 0; row < 8; row++ {
		fmt.Fprintf(out, "%d ", 8-row)
		for col := 0; col < 8; col++ {
			sq := rules.MustSquare(row, col)
			switch p := b.PieceAt(sq); {
			case p != rules.NoPiece:
				fmt.Fprint(out, p.Label()+" ")
			case game.IsDestination(sq):
				fmt.Fprint(out, "*  ")
			default:
				fmt.Fprint(out, ".  ")
			}
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "  a  b  c  d  e  f  g  h")
}
