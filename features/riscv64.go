package features

import "github.com/coreos/go-semver/semver"

// RISC-V 64 feature catalog. Bit assignments are stable across the
// artifact family; bits 38-41 and 88-91 were retired and stay zero.

// Bit indices, grouped the way the ISA manuals group the extensions.
const (
	// Scalar floating point
	F        uint32 = 1
	D        uint32 = 2
	Zfinx    uint32 = 3
	Zdinx    uint32 = 4
	Zhinx    uint32 = 5
	Zhinxmin uint32 = 6

	// Vector
	V      uint32 = 7
	Zve32x uint32 = 8
	Zve32f uint32 = 9
	Zve64x uint32 = 10
	Zve64f uint32 = 11
	Zve64d uint32 = 12

	// Bit manipulation
	Zba  uint32 = 13
	Zbb  uint32 = 14
	Zbc  uint32 = 15
	Zbkb uint32 = 16
	Zbkc uint32 = 17
	Zbkx uint32 = 18
	Zbs  uint32 = 19

	// Scalar crypto
	Zknd  uint32 = 20
	Zkne  uint32 = 21
	Zknh  uint32 = 22
	Zksed uint32 = 23
	Zksh  uint32 = 24
	Zkr   uint32 = 25
	Zk    uint32 = 26

	// Vector crypto
	Zvknha uint32 = 27
	Zvknhb uint32 = 28
	Zvksed uint32 = 29
	Zvksh  uint32 = 30
	Zvkb   uint32 = 31
	Zvbb   uint32 = 32
	Zvbc   uint32 = 33

	// Vector bfloat16
	Zvfbfmin uint32 = 34
	Zvfbfwma uint32 = 35
	Zvkg     uint32 = 36
	Zvkned   uint32 = 37

	// Compressed instructions
	C    uint32 = 64
	Zca  uint32 = 65
	Zcb  uint32 = 66
	Zcd  uint32 = 67
	Zcf  uint32 = 68
	Zcmp uint32 = 69
	Zcmt uint32 = 70

	// Atomics
	A      uint32 = 71
	Zalrsc uint32 = 72
	Zacas  uint32 = 73

	// Integer multiply and cache management
	M      uint32 = 74
	Zmmul  uint32 = 75
	Zicbom uint32 = 76
	Zicbop uint32 = 77
	Zicboz uint32 = 78

	// Privileged and misc
	S      uint32 = 79
	U      uint32 = 80
	Zicntr uint32 = 81
	Zihpm  uint32 = 82
	Zicond uint32 = 83
	Zawrs  uint32 = 84
	Zfa    uint32 = 85
	Zfh    uint32 = 86
	Zfhmin uint32 = 87

	// Later additions
	Zicclsm     uint32 = 96
	Zicfilp     uint32 = 97
	Zicfiss     uint32 = 98
	Zihintntl   uint32 = 99
	Zihintpause uint32 = 100
	Zihwa       uint32 = 101
	Zimop       uint32 = 102
	Ziselect    uint32 = 103
	Ztso        uint32 = 104
)

var (
	llvm17 = semver.New("17.0.0")
	llvm18 = semver.New("18.0.0")
)

// Catalog is the full RISC-V 64 feature table in bit order.
var Catalog = []Feature{
	{Name: "f", Bit: F},
	{Name: "d", Bit: D},
	{Name: "zfinx", Bit: Zfinx},
	{Name: "zdinx", Bit: Zdinx},
	{Name: "zhinx", Bit: Zhinx},
	{Name: "zhinxmin", Bit: Zhinxmin},
	{Name: "v", Bit: V},
	{Name: "zve32x", Bit: Zve32x},
	{Name: "zve32f", Bit: Zve32f},
	{Name: "zve64x", Bit: Zve64x},
	{Name: "zve64f", Bit: Zve64f},
	{Name: "zve64d", Bit: Zve64d},
	{Name: "zba", Bit: Zba},
	{Name: "zbb", Bit: Zbb},
	{Name: "zbc", Bit: Zbc},
	{Name: "zbkb", Bit: Zbkb},
	{Name: "zbkc", Bit: Zbkc},
	{Name: "zbkx", Bit: Zbkx},
	{Name: "zbs", Bit: Zbs},
	{Name: "zknd", Bit: Zknd},
	{Name: "zkne", Bit: Zkne},
	{Name: "zknh", Bit: Zknh},
	{Name: "zksed", Bit: Zksed},
	{Name: "zksh", Bit: Zksh},
	{Name: "zkr", Bit: Zkr},
	{Name: "zk", Bit: Zk},
	{Name: "zvknha", Bit: Zvknha, MinVersion: llvm17},
	{Name: "zvknhb", Bit: Zvknhb, MinVersion: llvm17},
	{Name: "zvksed", Bit: Zvksed, MinVersion: llvm17},
	{Name: "zvksh", Bit: Zvksh, MinVersion: llvm17},
	{Name: "zvkb", Bit: Zvkb, MinVersion: llvm17},
	{Name: "zvbb", Bit: Zvbb, MinVersion: llvm17},
	{Name: "zvbc", Bit: Zvbc, MinVersion: llvm17},
	{Name: "zvfbfmin", Bit: Zvfbfmin, MinVersion: llvm18},
	{Name: "zvfbfwma", Bit: Zvfbfwma, MinVersion: llvm18},
	{Name: "zvkg", Bit: Zvkg, MinVersion: llvm17},
	{Name: "zvkned", Bit: Zvkned, MinVersion: llvm17},
	{Name: "c", Bit: C},
	{Name: "zca", Bit: Zca},
	{Name: "zcb", Bit: Zcb},
	{Name: "zcd", Bit: Zcd},
	{Name: "zcf", Bit: Zcf},
	{Name: "zcmp", Bit: Zcmp},
	{Name: "zcmt", Bit: Zcmt},
	{Name: "a", Bit: A},
	{Name: "zalrsc", Bit: Zalrsc},
	{Name: "zacas", Bit: Zacas, MinVersion: llvm17},
	{Name: "m", Bit: M},
	{Name: "zmmul", Bit: Zmmul},
	{Name: "zicbom", Bit: Zicbom},
	{Name: "zicbop", Bit: Zicbop},
	{Name: "zicboz", Bit: Zicboz},
	{Name: "s", Bit: S},
	{Name: "u", Bit: U},
	{Name: "zicntr", Bit: Zicntr},
	{Name: "zihpm", Bit: Zihpm},
	{Name: "zicond", Bit: Zicond},
	{Name: "zawrs", Bit: Zawrs},
	{Name: "zfa", Bit: Zfa},
	{Name: "zfh", Bit: Zfh},
	{Name: "zfhmin", Bit: Zfhmin},
	{Name: "zicclsm", Bit: Zicclsm},
	{Name: "zicfilp", Bit: Zicfilp},
	{Name: "zicfiss", Bit: Zicfiss},
	{Name: "zihintntl", Bit: Zihintntl},
	{Name: "zihintpause", Bit: Zihintpause},
	{Name: "zihwa", Bit: Zihwa},
	{Name: "zimop", Bit: Zimop},
	{Name: "ziselect", Bit: Ziselect},
	{Name: "ztso", Bit: Ztso},
}

// Deps lists the "feature requires prerequisite" edges. The list is not
// topologically sorted; closure iterates to a fixed point.
var Deps = []Dep{
	{D, F},
	{Zfinx, F},
	{Zdinx, D},
	{Zhinx, F},
	{Zhinxmin, F},
	{Zhinx, Zhinxmin},
	{Zve32f, Zve32x},
	{Zve64f, Zve64x},
	{Zve64d, Zve64f},
	{Zve64f, Zve32f},
	{Zve64x, Zve32x},
	{Zve32x, V},
	{Zve32f, V},
	{Zve64x, V},
	{Zve64f, V},
	{Zve64d, V},
	{Zvbb, V},
	{Zvbc, V},
	{Zvfbfmin, V},
	{Zvfbfwma, V},
	{Zvkg, V},
	{Zvkned, V},
	{Zvknha, V},
	{Zvknhb, V},
	{Zvksed, V},
	{Zvksh, V},
	{Zvkb, V},
	{Zca, C},
	{Zcb, C},
	{Zcd, C},
	{Zcf, C},
	{Zcmp, C},
	{Zcmt, C},
	{Zalrsc, A},
	{Zacas, A},
	{Zmmul, M},
	{Zk, Zknd},
	{Zk, Zkne},
	{Zk, Zknh},
	{Zk, Zksed},
	{Zk, Zksh},
	{Zk, Zkr},
	{Zfa, F},
	{Zfh, F},
	{Zfhmin, F},
	{Zfh, Zfhmin},
}
