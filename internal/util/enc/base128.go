package enc

// NOTE: The alphabet is taken from base128.c of the IODINE project.
/*
 * Copyright (c) 2006-2014 Erik Ekman <yarrick@kryo.se>,
 * 2006-2009 Bjorn Andersson <flex@kryo.se>
 * Mostly rewritten 2009 J.A.Bezemer@opensourcepartners.nl
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

import (
	"fmt"

	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

// cb128Invert maps a character of cb128 back to its 7-bit value; 0xff marks characters outside the alphabet
var cb128Invert = func() (res [256]byte) {
	for i := range res {
		res[i] = 0xff
	}
	for i := 0; i < len(cb128); i++ {
		res[cb128[i]] = byte(i)
	}
	return
}()

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

// Encode splits the input into 7-bit groups, most significant bit first, which is the layout the luci decoder expects.
func (b *Base128Encoder) Encode(src []byte) []byte {
	dst := make([]byte, 0, (len(src)*8+6)/7)

	shift := uint(1)
	carry := byte(0)
	for _, val := range src {
		dst = append(dst, cb128[carry|val>>shift])
		carry = (val & (1<<shift - 1)) << (7 - shift)
		if shift == 7 {
			dst = append(dst, cb128[carry])
			carry = 0
			shift = 0
		}
		shift++
	}

	// shift == 1 means the input ended on a 7-byte boundary and nothing is left over
	if shift != 1 {
		dst = append(dst, cb128[carry])
	}
	return dst
}

func (b *Base128Encoder) Decode(data []byte) ([]byte, error) {
	src := make([]byte, len(data))
	for i, v := range data {
		if cb128Invert[v] == 0xff {
			return nil, errors.Errorf("Invalid base128 character: \\x%02x", v)
		}
		src[i] = cb128Invert[v]
	}

	res, err := base128.DecodeString(string(src))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}
