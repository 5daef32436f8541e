// Package codegen emits a standalone Go source file embedding a
// frozen FixedDfa's tables as array literals, so a pattern compiled
// once by rxdfa can be matched at runtime with no parsing cost.
package codegen

import (
	"github.com/dave/jennifer/jen"

	"rxdfa/internal/dfa"
)

// Config controls the generated file's shape.
type Config struct {
	Package      string // generated file's package clause
	FuncName     string // generated matcher function name, e.g. "MatchLogLine"
	Pattern      string // original pattern, embedded as a doc comment
	AlphabetSize int
	PreIndex     bool
}

// Generate renders a self-contained matcher for d into a *jen.File.
// The emitted function has the shape `func FuncName(s []byte) bool`
// and needs no import beyond what jen itself adds.
func Generate(d *dfa.Dfa, cfg Config) (*jen.File, error) {
	alphabetSize := cfg.AlphabetSize
	if alphabetSize <= 0 {
		alphabetSize = 128
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by rxdfa/codegen. DO NOT EDIT.")
	if cfg.Pattern != "" {
		f.HeaderComment("source pattern: " + cfg.Pattern)
	}

	chsName := cfg.FuncName + "Chs"
	transName := cfg.FuncName + "Transitions"
	endName := cfg.FuncName + "IsEnd"
	idxName := cfg.FuncName + "ChIndex"

	chLits := make([]jen.Code, len(d.Chars))
	for i, c := range d.Chars {
		chLits[i] = jen.Lit(c)
	}
	f.Var().Id(chsName).Op("=").Index().Byte().Values(chLits...)

	tmp := make([]int, alphabetSize)
	for i, ch := range d.Chars {
		tmp[int(ch)%alphabetSize] = i + 1
	}

	rowLits := make([]jen.Code, len(d.States))
	isEndLits := make([]jen.Code, len(d.States))
	for _, st := range d.States {
		row := make([]jen.Code, len(d.Chars))
		for i := range row {
			row[i] = jen.Lit(0)
		}
		for _, t := range st.Trans {
			col := tmp[int(t.Ch)%alphabetSize]
			row[col-1] = jen.Lit(t.To.No)
		}
		rowLits[st.No-1] = jen.Index().Uint16().Values(row...)
		isEndLits[st.No-1] = jen.Lit(st.IsEnd)
	}
	f.Var().Id(transName).Op("=").Index().Index().Uint16().Values(rowLits...)
	f.Var().Id(endName).Op("=").Index().Bool().Values(isEndLits...)

	f.Comment(cfg.FuncName + " matches s against the frozen DFA for " + cfg.Pattern + ".")

	if cfg.PreIndex {
		// pre_index: the char->column map is baked in as a literal
		// table instead of being rebuilt on every call.
		idxLits := make([]jen.Code, alphabetSize)
		for i, v := range tmp {
			idxLits[i] = jen.Lit(v)
		}
		f.Var().Id(idxName).Op("=").Index(jen.Lit(alphabetSize)).Int().Values(idxLits...)

		f.Func().Id(cfg.FuncName).Params(jen.Id("s").Index().Byte()).Bool().Block(
			jen.Id("st").Op(":=").Lit(1),
			jen.For(jen.List(jen.Id("_"), jen.Id("b")).Op(":=").Range().Id("s")).Block(
				jen.Id("j").Op(":=").Id(idxName).Index(jen.Int().Call(jen.Id("b")).Op("%").Lit(alphabetSize)),
				jen.If(jen.Id("j").Op("==").Lit(0)).Block(jen.Return(jen.False())),
				jen.Id("to").Op(":=").Id(transName).Index(jen.Id("st").Op("-").Lit(1)).Index(jen.Id("j").Op("-").Lit(1)),
				jen.If(jen.Id("to").Op("==").Lit(0)).Block(jen.Return(jen.False())),
				jen.Id("st").Op("=").Int().Call(jen.Id("to")),
			),
			jen.Return(jen.Id(endName).Index(jen.Id("st").Op("-").Lit(1))),
		)
		return f, nil
	}

	f.Func().Id(cfg.FuncName).Params(jen.Id("s").Index().Byte()).Bool().Block(
		jen.Var().Id("t").Index(jen.Lit(alphabetSize)).Int(),
		jen.For(jen.List(jen.Id("i"), jen.Id("ch")).Op(":=").Range().Id(chsName)).Block(
			jen.Id("t").Index(jen.Int().Call(jen.Id("ch")).Op("%").Lit(alphabetSize)).Op("=").Id("i").Op("+").Lit(1),
		),
		jen.Id("st").Op(":=").Lit(1),
		jen.For(jen.List(jen.Id("_"), jen.Id("b")).Op(":=").Range().Id("s")).Block(
			jen.Id("j").Op(":=").Id("t").Index(jen.Int().Call(jen.Id("b")).Op("%").Lit(alphabetSize)),
			jen.If(jen.Id("j").Op("==").Lit(0)).Block(jen.Return(jen.False())),
			jen.Id("to").Op(":=").Id(transName).Index(jen.Id("st").Op("-").Lit(1)).Index(jen.Id("j").Op("-").Lit(1)),
			jen.If(jen.Id("to").Op("==").Lit(0)).Block(jen.Return(jen.False())),
			jen.Id("st").Op("=").Int().Call(jen.Id("to")),
		),
		jen.Return(jen.Id(endName).Index(jen.Id("st").Op("-").Lit(1))),
	)

	return f, nil
}

// Save renders f and writes it to path, running gofmt over the result
// (jen.File.Save already formats internally via go/format).
func Save(f *jen.File, path string) error {
	return f.Save(path)
}
