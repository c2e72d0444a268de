// Command ksz8863-sim is an interactive simulator for the KSZ8863 register
// file. It runs both management interfaces against in-memory register maps,
// which makes it handy for trying out configuration sequences before they
// touch hardware.
//
// Commands:
//
//	read <addr>               read an SMI register
//	write <addr> <val>        write an SMI register
//	dump                      print the whole SMI register file
//	miim read <phy> <reg>     read a MIIM register
//	miim write <phy> <reg> <val>
//	miim dump <phy>
//	reset                     return both register files to power-on state
//	quit
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"ksz8863-go/miim"
	"ksz8863-go/smi"
)

type sim struct {
	smiMap  *smi.Map
	miimMap *miim.Map
	smi     *smi.Smi
	miim    *miim.Miim
}

func newSim() *sim {
	s := &sim{smiMap: smi.NewMap(), miimMap: miim.NewMap()}
	s.smi = smi.New(s.smiMap)
	s.miim = miim.New(s.miimMap)
	return s
}

func main() {
	s := newSim()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("ksz8863 register simulator; type 'help' for commands")
	for {
		fmt.Print("> ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse:", err)
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			break
		}
		if err := s.run(args); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func (s *sim) run(args []string) error {
	switch args[0] {
	case "help":
		fmt.Println("read <addr> | write <addr> <val> | dump")
		fmt.Println("miim read <phy> <reg> | miim write <phy> <reg> <val> | miim dump <phy>")
		fmt.Println("reset | quit")
		return nil

	case "read":
		if len(args) != 2 {
			return fmt.Errorf("usage: read <addr>")
		}
		a, err := parseByte(args[1])
		if err != nil {
			return err
		}
		st, err := s.smi.Read(smi.Address(a))
		if err != nil {
			return err
		}
		fmt.Println(st)
		return nil

	case "write":
		if len(args) != 3 {
			return fmt.Errorf("usage: write <addr> <val>")
		}
		a, err := parseByte(args[1])
		if err != nil {
			return err
		}
		v, err := parseByte(args[2])
		if err != nil {
			return err
		}
		return s.smi.Write(smi.StateOf(smi.Address(a), v))

	case "dump":
		for _, st := range s.smiMap.States() {
			fmt.Printf("0x%02X %s\n", uint8(st.Addr()), st)
		}
		return nil

	case "miim":
		return s.runMiim(args[1:])

	case "reset":
		s.smiMap = smi.NewMap()
		s.miimMap = miim.NewMap()
		s.smi = smi.New(s.smiMap)
		s.miim = miim.New(s.miimMap)
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func (s *sim) runMiim(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: miim read|write|dump ...")
	}
	switch args[0] {
	case "read":
		if len(args) != 3 {
			return fmt.Errorf("usage: miim read <phy> <reg>")
		}
		phy, reg, err := parsePhyReg(args[1], args[2])
		if err != nil {
			return err
		}
		st, err := s.miim.Phy(phy).Read(miim.Address(reg))
		if err != nil {
			return err
		}
		fmt.Println(st)
		return nil

	case "write":
		if len(args) != 4 {
			return fmt.Errorf("usage: miim write <phy> <reg> <val>")
		}
		phy, reg, err := parsePhyReg(args[1], args[2])
		if err != nil {
			return err
		}
		v, err := strconv.ParseUint(args[3], 0, 16)
		if err != nil {
			return fmt.Errorf("bad value %q", args[3])
		}
		return s.miim.Phy(phy).Write(miim.StateOf(miim.Address(reg), uint16(v)))

	case "dump":
		if len(args) != 2 {
			return fmt.Errorf("usage: miim dump <phy>")
		}
		phy, err := parseByte(args[1])
		if err != nil {
			return err
		}
		p := s.miim.Phy(phy)
		for _, a := range miim.Addresses() {
			st, err := p.Read(a)
			if err != nil {
				return err
			}
			fmt.Printf("0x%02X %s\n", uint8(a), st)
		}
		return nil
	}
	return fmt.Errorf("unknown miim command %q", args[0])
}

func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return uint8(v), nil
}

func parsePhyReg(phy, reg string) (uint8, uint8, error) {
	p, err := parseByte(phy)
	if err != nil {
		return 0, 0, err
	}
	r, err := parseByte(reg)
	if err != nil {
		return 0, 0, err
	}
	return p, r, nil
}
