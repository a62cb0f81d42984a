package murmur


// Kind identifies one of the three MurmurHash3 variants.
type Kind uint8

const (
	// Kind32 is MurmurHash3_x86_32, a single 32 bit lane
	Kind32 Kind = iota
	// Kind128x86 is MurmurHash3_x86_128, four 32 bit lanes
	Kind128x86
	// Kind128x64 is MurmurHash3_x64_128, two 64 bit lanes
	Kind128x64
)

// Descriptor is the static configuration of a variant.
//	Constant tables are ordered by lane: k(i+1) is multiplied by BlockMultipliers[i], rotated by BlockRotations[i],
//	then multiplied by BlockMultipliers[(i+1) % len(BlockMultipliers)]. The x86_32 table therefore holds two multipliers for its one lane.
//	The mixers in this package are unrolled, the tables describe them and are checked against them in tests.
type Descriptor struct {
	// Name: the name the variant is published under
	Name string
	// LaneCount: number of accumulators in the running state
	LaneCount int
	// LaneWidthBits: width of each accumulator, 32 or 64
	LaneWidthBits int
	// BlockSize: bytes consumed by one full mixing step
	BlockSize int
	// DigestSize: bytes in the finalized digest
	DigestSize int
	// BlockMultipliers: the c1..cN constants applied to each k lane
	BlockMultipliers []uint64
	// BlockRotations: left rotation applied to each k lane between its two multiplies
	BlockRotations []int
	// LaneRotations: left rotation applied to each h lane before the cross combine
	LaneRotations []int
	// LaneAdds: the constant added after h = h * 5
	LaneAdds []uint64
	// AvalancheShifts: right shifts of the finalization mix
	AvalancheShifts []int
	// AvalancheMultipliers: multipliers of the finalization mix
	AvalancheMultipliers []uint64
}

const (
	// k lane multipliers, x86_32
	c32_1 = 0xcc9e2d51
	c32_2 = 0x1b873593
	// added to h1 after each block is mixed in
	n32_1 = 0xe6546b64

	// k lane multipliers, x86_128
	c128x86_1 = 0x239b961b
	c128x86_2 = 0xab0e9789
	c128x86_3 = 0x38b34ae5
	c128x86_4 = 0xa1e38b93
	// added to each h lane after the cross combine, x86_128
	n128x86_1 = 0x561ccd1b
	n128x86_2 = 0x0bcaa747
	n128x86_3 = 0x96cd1c35
	n128x86_4 = 0x32ac3b17

	// k lane multipliers, x64_128
	c128x64_1 = 0x87c37b91114253d5
	c128x64_2 = 0x4cf5ad432745937f
	// added to each h lane after the cross combine, x64_128
	n128x64_1 = 0x52dce729
	n128x64_2 = 0x38495ab5

	// avalanche multipliers, 32 bit lanes
	fmix32_1 = 0x85ebca6b
	fmix32_2 = 0xc2b2ae35
	// avalanche multipliers, 64 bit lanes
	fmix64_1 = 0xff51afd7ed558ccd
	fmix64_2 = 0xc4ceb9fe1a85ec53
)

const (
	// Block32 is the block size of x86_32
	Block32 = 4
	// Block128 is the block size of both 128 bit variants
	Block128 = 16
)

// Descriptors holds one entry per Kind. It is read only.
var Descriptors = [...]Descriptor{
	Kind32: {
		Name: "mmh3_32",
		LaneCount: 1,
		LaneWidthBits: 32,
		BlockSize: Block32,
		DigestSize: 4,
		BlockMultipliers: []uint64{ c32_1, c32_2 },
		BlockRotations: []int{ 15 },
		LaneRotations: []int{ 13 },
		LaneAdds: []uint64{ n32_1 },
		AvalancheShifts: []int{ 16, 13, 16 },
		AvalancheMultipliers: []uint64{ fmix32_1, fmix32_2 },
	},
	Kind128x86: {
		Name: "mmh3_x86_128",
		LaneCount: 4,
		LaneWidthBits: 32,
		BlockSize: Block128,
		DigestSize: 16,
		BlockMultipliers: []uint64{ c128x86_1, c128x86_2, c128x86_3, c128x86_4 },
		BlockRotations: []int{ 15, 16, 17, 18 },
		LaneRotations: []int{ 19, 17, 15, 13 },
		LaneAdds: []uint64{ n128x86_1, n128x86_2, n128x86_3, n128x86_4 },
		AvalancheShifts: []int{ 16, 13, 16 },
		AvalancheMultipliers: []uint64{ fmix32_1, fmix32_2 },
	},
	Kind128x64: {
		Name: "mmh3_x64_128",
		LaneCount: 2,
		LaneWidthBits: 64,
		BlockSize: Block128,
		DigestSize: 16,
		BlockMultipliers: []uint64{ c128x64_1, c128x64_2 },
		BlockRotations: []int{ 31, 33 },
		LaneRotations: []int{ 27, 31 },
		LaneAdds: []uint64{ n128x64_1, n128x64_2 },
		AvalancheShifts: []int{ 33, 33, 33 },
		AvalancheMultipliers: []uint64{ fmix64_1, fmix64_2 },
	},
}
