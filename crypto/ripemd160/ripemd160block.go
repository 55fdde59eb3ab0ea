// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// RIPEMD-160 block step, adapted from the public-domain reference
// implementation described in the RIPEMD-160 paper by Hans Dobbertin,
// Antoon Bosselaers, and Bart Preneel.

package ripemd160

import "math/bits"

var _n0 = [80]uint{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var _n1 = [80]uint{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var _r0 = [80]uint{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var _r1 = [80]uint{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

func f1(x, y, z uint32) uint32 { return x ^ y ^ z }
func f2(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func f3(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func f4(x, y, z uint32) uint32 { return (x & z) | (y & ^z) }
func f5(x, y, z uint32) uint32 { return x ^ (y | ^z) }

// _Block processes as many 64-byte chunks of p as possible, updating
// d.s, and returns the number of bytes consumed.
func _Block(md *digest, p []byte) int {
	n := 0
	var x [16]uint32
	var alpha, beta uint32
	for len(p) >= BlockSize {
		a, b, c, d, e := md.s[0], md.s[1], md.s[2], md.s[3], md.s[4]
		aa, bb, cc, dd, ee := a, b, c, d, e
		j := 0
		for i := 0; i < 16; i++ {
			x[i] = uint32(p[j]) | uint32(p[j+1])<<8 | uint32(p[j+2])<<16 | uint32(p[j+3])<<24
			j += 4
		}

		i := 0
		for i < 16 {
			alpha = a + f1(b, c, d) + x[_n0[i]]
			s := _r0[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + e
			beta = bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			alpha = aa + f5(bb, cc, dd) + x[_n1[i]] + 0x50a28be6
			s = _r1[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		for i < 32 {
			alpha = a + f2(b, c, d) + x[_n0[i]] + 0x5a827999
			s := _r0[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + e
			beta = bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			alpha = aa + f4(bb, cc, dd) + x[_n1[i]] + 0x5c4dd124
			s = _r1[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		for i < 48 {
			alpha = a + f3(b, c, d) + x[_n0[i]] + 0x6ed9eba1
			s := _r0[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + e
			beta = bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			alpha = aa + f3(bb, cc, dd) + x[_n1[i]] + 0x6d703ef3
			s = _r1[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		for i < 64 {
			alpha = a + f4(b, c, d) + x[_n0[i]] + 0x8f1bbcdc
			s := _r0[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + e
			beta = bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			alpha = aa + f2(bb, cc, dd) + x[_n1[i]] + 0x7a6d76e9
			s = _r1[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		for i < 80 {
			alpha = a + f5(b, c, d) + x[_n0[i]] + 0xa953fd4e
			s := _r0[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + e
			beta = bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			alpha = aa + f1(bb, cc, dd) + x[_n1[i]]
			s = _r1[i]
			alpha = bits.RotateLeft32(alpha, int(s)) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}

		dd += c + md.s[1]
		md.s[1] = md.s[2] + d + ee
		md.s[2] = md.s[3] + e + aa
		md.s[3] = md.s[4] + a + bb
		md.s[4] = md.s[0] + b + cc
		md.s[0] = dd

		p = p[BlockSize:]
		n += BlockSize
	}
	return n
}
