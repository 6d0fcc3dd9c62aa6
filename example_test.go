// SPDX-License-Identifier: EPL-2.0

package asdr_test

import (
	"bytes"
	"fmt"
	"log"
	"math"

	"github.com/avnerbr/asdr"
	"github.com/avnerbr/asdr/formats/wav"
)

// Compare a 16-bit PCM file against itself. A distortion-free pair has
// infinite SDR.
func Example() {
	samples := make([]int16, 256)
	for i := range samples {
		samples[i] = int16(8000 * math.Sin(2*math.Pi*440*float64(i)/8000))
	}

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, 8000, 1, samples); err != nil {
		log.Fatal(err)
	}
	encoded := buf.Bytes()

	dec := &wav.Decoder{}

	ref, err := dec.Decode(bytes.NewReader(encoded))
	if err != nil {
		log.Fatal(err)
	}
	tst, err := dec.Decode(bytes.NewReader(encoded))
	if err != nil {
		log.Fatal(err)
	}

	results, err := asdr.Compare(ref, tst)
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		fmt.Printf("SDR ch%d: %g dB\n", r.Channel, r.DB)
	}
	// Output:
	// SDR ch0: +Inf dB
}
