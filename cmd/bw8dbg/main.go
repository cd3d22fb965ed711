// Command bw8dbg is an interactive TUI debugger for a BW8 program. The
// program image is supplied as hex bytes, via -hex or stdin, never a file
// path: there is no binary loader here, only an in-memory image.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"bw8/bus"
	"bw8/cpu"
	"bw8/isa"
	"bw8/memory"
)

func parseHex(s string) ([]byte, error) {
	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad hex byte %q: %w", f, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

type model struct {
	cpu *cpu.CPU
	bus *memory.FlatBus

	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			m.cpu.Run(m.bus, 1)
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range m.bus.Banks[0][start : start+16] {
		if start+uint16(i) == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}

	base := m.cpu.PC &^ 0x0F
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(uint16(int(base)+i*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	s := m.cpu.Status
	var flags string
	for _, f := range []bool{s.NMIActive, s.Privilege == bus.User, s.BankEnable, s.IRQEnable, s.Negative, s.Overflow, s.Zero, s.Carry} {
		if f {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
BR: %x
 A: %02x  B: %02x  C: %02x  D: %02x
 X: %04x  Y: %04x  SP: %04x
M U B I N V Z C
`,
		m.cpu.PC, m.prevPC, m.cpu.BR.Byte(),
		m.cpu.Reg.Get8(isa.RegA), m.cpu.Reg.Get8(isa.RegB), m.cpu.Reg.Get8(isa.RegC), m.cpu.Reg.Get8(isa.RegD),
		m.cpu.Reg.X, m.cpu.Reg.Y, m.cpu.Reg.SP,
	) + flags
}

func (m model) View() string {
	var buf [4]byte
	copy(buf[:], m.bus.Banks[0][m.cpu.PC:])
	inst, _, _ := isa.Decode(buf[:])

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(inst),
	)
}

func main() {
	hex := flag.String("hex", "", "program bytes in hex, space separated (default: read from stdin)")
	flag.Parse()

	raw := *hex
	if raw == "" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			fmt.Fprintln(os.Stderr, "bw8dbg:", err)
			os.Exit(1)
		}
		raw = string(data)
	}

	image, err := parseHex(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bw8dbg:", err)
		os.Exit(1)
	}

	m := model{cpu: cpu.New(), bus: memory.NewFlatBus(image)}
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bw8dbg:", err)
		os.Exit(1)
	}
	if final, ok := result.(model); ok && final.err != nil {
		fmt.Println("Error:", final.err)
	}
}
