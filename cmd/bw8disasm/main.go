// Command bw8disasm decodes a stream of hex bytes into BW8 instructions,
// one per line. Input is hex text via -hex or stdin, never a file path.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	cli "gopkg.in/urfave/cli.v2"

	"bw8/isa"
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

func disassemble(w io.Writer, data []byte) {
	pc := 0
	for pc < len(data) {
		inst, n, ok := isa.Decode(data[pc:])
		if !ok {
			fmt.Fprintf(w, "%04x: <truncated>\n", pc)
			return
		}
		fmt.Fprintf(w, "%04x: %-28s %x\n", pc, formatInstruction(inst), data[pc:pc+n])
		pc += n
	}
}

func formatInstruction(inst isa.Instruction) string {
	return fmt.Sprintf("%+v", inst)
}

func main() {
	app := &cli.App{
		Name:  "bw8disasm",
		Usage: "disassemble a BW8 instruction stream given as hex bytes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "hex",
				Usage: "program bytes in hex, space separated (default: read from stdin)",
			},
		},
		Action: func(ctx *cli.Context) error {
			raw := ctx.String("hex")
			if raw == "" {
				data, err := io.ReadAll(bufio.NewReader(os.Stdin))
				if err != nil {
					return err
				}
				raw = string(data)
			}
			image, err := parseHex(raw)
			if err != nil {
				return err
			}
			disassemble(os.Stdout, image)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
