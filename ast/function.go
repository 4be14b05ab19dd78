package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/datagit/utils"
)

type Function struct {
	Name  string
	Args  []Node
	Alias string
}

func NewFunction(name string, args ...Node) *Function {
	f := functionPool.Get().(*Function)
	f.Name = name
	f.Args = append(f.Args[:0], args...)
	f.Alias = ""
	return f
}

// As sets the alias the function result is exposed under.
func (f *Function) As(alias string) *Function {
	f.Alias = alias
	return f
}

func (f *Function) Type() NodeType         { return NodeFunction }
func (f *Function) Accept(v Visitor) error { return v.VisitFunction(f) }
func (f *Function) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(utils.U64ToBytes(utils.FingerprintStrings("func:", f.Name, f.Alias)))
	_, _ = h.Write(utils.U64ToBytes(uint64(len(f.Args))))
	for _, arg := range f.Args {
		_, _ = h.Write(utils.U64ToBytes(arg.Fingerprint()))
	}
	return h.Sum64()
}

func (f *Function) Release() {
	for i, arg := range f.Args {
		releaseNode(arg)
		f.Args[i] = nil
	}
	f.Args = f.Args[:0]
	f.Name = ""
	f.Alias = ""
	functionPool.Put(f)
}
