// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bridge

// Wire encoding of the fixed-layout bridge types. Every type encodes its
// fields in declaration order with no padding.

func putInt64(dst []byte, v int64) []byte {
	ByteOrder.PutUint64(dst[:8], uint64(v))
	return dst[8:]
}

func getInt64(src []byte) (int64, []byte) {
	return int64(ByteOrder.Uint64(src[:8])), src[8:]
}

func putInt32(dst []byte, v int32) []byte {
	ByteOrder.PutUint32(dst[:4], uint32(v))
	return dst[4:]
}

func getInt32(src []byte) (int32, []byte) {
	return int32(ByteOrder.Uint32(src[:4])), src[4:]
}

// SizeBytes implements Marshallable.SizeBytes.
func (t *Timespec) SizeBytes() int {
	return SizeOfTimespec
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (t *Timespec) MarshalBytes(dst []byte) []byte {
	dst = putInt64(dst, t.Sec)
	return putInt64(dst, t.Nsec)
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (t *Timespec) UnmarshalBytes(src []byte) []byte {
	t.Sec, src = getInt64(src)
	t.Nsec, src = getInt64(src)
	return src
}

// SizeBytes implements Marshallable.SizeBytes.
func (t *Timeval) SizeBytes() int {
	return SizeOfTimeval
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (t *Timeval) MarshalBytes(dst []byte) []byte {
	dst = putInt64(dst, t.Sec)
	return putInt64(dst, t.Usec)
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (t *Timeval) UnmarshalBytes(src []byte) []byte {
	t.Sec, src = getInt64(src)
	t.Usec, src = getInt64(src)
	return src
}

// SizeBytes implements Marshallable.SizeBytes.
func (i *ITimerVal) SizeBytes() int {
	return SizeOfITimerVal
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (i *ITimerVal) MarshalBytes(dst []byte) []byte {
	dst = i.Interval.MarshalBytes(dst)
	return i.Value.MarshalBytes(dst)
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (i *ITimerVal) UnmarshalBytes(src []byte) []byte {
	src = i.Interval.UnmarshalBytes(src)
	return i.Value.UnmarshalBytes(src)
}

// SizeBytes implements Marshallable.SizeBytes.
func (t *Tms) SizeBytes() int {
	return SizeOfTms
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (t *Tms) MarshalBytes(dst []byte) []byte {
	dst = putInt64(dst, t.UTime)
	dst = putInt64(dst, t.STime)
	dst = putInt64(dst, t.CUTime)
	return putInt64(dst, t.CSTime)
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (t *Tms) UnmarshalBytes(src []byte) []byte {
	t.UTime, src = getInt64(src)
	t.STime, src = getInt64(src)
	t.CUTime, src = getInt64(src)
	t.CSTime, src = getInt64(src)
	return src
}

// SizeBytes implements Marshallable.SizeBytes.
func (u *Utimbuf) SizeBytes() int {
	return SizeOfUtimbuf
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (u *Utimbuf) MarshalBytes(dst []byte) []byte {
	dst = putInt64(dst, u.Actime)
	return putInt64(dst, u.Modtime)
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (u *Utimbuf) UnmarshalBytes(src []byte) []byte {
	u.Actime, src = getInt64(src)
	u.Modtime, src = getInt64(src)
	return src
}

// SizeBytes implements Marshallable.SizeBytes.
func (r *RUsage) SizeBytes() int {
	return SizeOfRUsage
}

func (r *RUsage) counters() [14]*int64 {
	return [14]*int64{
		&r.MaxRSS, &r.IXRSS, &r.IDRSS, &r.ISRSS, &r.MinFlt, &r.MajFlt, &r.NSwap,
		&r.InBlock, &r.OuBlock, &r.MsgSnd, &r.MsgRcv, &r.NSignals, &r.NVCSw, &r.NIvCSw,
	}
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (r *RUsage) MarshalBytes(dst []byte) []byte {
	dst = r.UTime.MarshalBytes(dst)
	dst = r.STime.MarshalBytes(dst)
	for _, c := range r.counters() {
		dst = putInt64(dst, *c)
	}
	return dst
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (r *RUsage) UnmarshalBytes(src []byte) []byte {
	src = r.UTime.UnmarshalBytes(src)
	src = r.STime.UnmarshalBytes(src)
	for _, c := range r.counters() {
		*c, src = getInt64(src)
	}
	return src
}

// SizeBytes implements Marshallable.SizeBytes.
func (s *Stat) SizeBytes() int {
	return SizeOfStat
}

func (s *Stat) fields() [10]*int64 {
	return [10]*int64{
		&s.Dev, &s.Ino, &s.Mode, &s.Nlink, &s.UID, &s.GID, &s.Rdev, &s.Size,
		&s.Blksize, &s.Blocks,
	}
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (s *Stat) MarshalBytes(dst []byte) []byte {
	for _, f := range s.fields() {
		dst = putInt64(dst, *f)
	}
	dst = s.ATime.MarshalBytes(dst)
	dst = s.MTime.MarshalBytes(dst)
	return s.CTime.MarshalBytes(dst)
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (s *Stat) UnmarshalBytes(src []byte) []byte {
	for _, f := range s.fields() {
		*f, src = getInt64(src)
	}
	src = s.ATime.UnmarshalBytes(src)
	src = s.MTime.UnmarshalBytes(src)
	return s.CTime.UnmarshalBytes(src)
}

// SizeBytes implements Marshallable.SizeBytes.
func (p *PollFD) SizeBytes() int {
	return SizeOfPollFD
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (p *PollFD) MarshalBytes(dst []byte) []byte {
	dst = putInt32(dst, p.FD)
	ByteOrder.PutUint16(dst[:2], uint16(p.Events))
	ByteOrder.PutUint16(dst[2:4], uint16(p.REvents))
	return dst[4:]
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (p *PollFD) UnmarshalBytes(src []byte) []byte {
	p.FD, src = getInt32(src)
	p.Events = int16(ByteOrder.Uint16(src[:2]))
	p.REvents = int16(ByteOrder.Uint16(src[2:4]))
	return src[4:]
}

// SizeBytes implements Marshallable.SizeBytes.
func (s *SigSet) SizeBytes() int {
	return SizeOfSigSet
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (s *SigSet) MarshalBytes(dst []byte) []byte {
	ByteOrder.PutUint64(dst[:8], uint64(*s))
	return dst[8:]
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (s *SigSet) UnmarshalBytes(src []byte) []byte {
	*s = SigSet(ByteOrder.Uint64(src[:8]))
	return src[8:]
}

// SizeBytes implements Marshallable.SizeBytes.
func (s *SigInfo) SizeBytes() int {
	return SizeOfSigInfo
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (s *SigInfo) MarshalBytes(dst []byte) []byte {
	dst = putInt32(dst, s.Signo)
	return putInt32(dst, s.Code)
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (s *SigInfo) UnmarshalBytes(src []byte) []byte {
	s.Signo, src = getInt32(src)
	s.Code, src = getInt32(src)
	return src
}

// SizeBytes implements Marshallable.SizeBytes.
func (w *WStatus) SizeBytes() int {
	return SizeOfWStatus
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (w *WStatus) MarshalBytes(dst []byte) []byte {
	dst[0] = w.Code
	dst[1] = w.Info
	return dst[2:]
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (w *WStatus) UnmarshalBytes(src []byte) []byte {
	w.Code = src[0]
	w.Info = src[1]
	return src[2:]
}

// SizeBytes implements Marshallable.SizeBytes.
func (s *Sockaddr) SizeBytes() int {
	return SizeOfSockaddr
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (s *Sockaddr) MarshalBytes(dst []byte) []byte {
	ByteOrder.PutUint16(dst[:2], s.Family)
	ByteOrder.PutUint16(dst[2:4], s.Length)
	return dst[4+copy(dst[4:4+SockaddrDataLen], s.Data[:]):]
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (s *Sockaddr) UnmarshalBytes(src []byte) []byte {
	s.Family = ByteOrder.Uint16(src[:2])
	s.Length = ByteOrder.Uint16(src[2:4])
	return src[4+copy(s.Data[:], src[4:4+SockaddrDataLen]):]
}

// SizeBytes implements Marshallable.SizeBytes.
func (s *FDSet) SizeBytes() int {
	return SizeOfFDSet
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (s *FDSet) MarshalBytes(dst []byte) []byte {
	return dst[copy(dst[:SizeOfFDSet], s.Bits[:]):]
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (s *FDSet) UnmarshalBytes(src []byte) []byte {
	return src[copy(s.Bits[:], src[:SizeOfFDSet]):]
}

// SizeBytes implements Marshallable.SizeBytes.
func (s *CPUSet) SizeBytes() int {
	return SizeOfCPUSet
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (s *CPUSet) MarshalBytes(dst []byte) []byte {
	for _, w := range s.Bits {
		ByteOrder.PutUint64(dst[:8], w)
		dst = dst[8:]
	}
	return dst
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (s *CPUSet) UnmarshalBytes(src []byte) []byte {
	for i := range s.Bits {
		s.Bits[i] = ByteOrder.Uint64(src[:8])
		src = src[8:]
	}
	return src
}

// SizeBytes implements Marshallable.SizeBytes.
func (u *UtsName) SizeBytes() int {
	return SizeOfUtsName
}

func (u *UtsName) fields() [6]*[UtsNameLength]byte {
	return [6]*[UtsNameLength]byte{&u.Sysname, &u.Nodename, &u.Release, &u.Version, &u.Machine, &u.Domainname}
}

// MarshalBytes implements Marshallable.MarshalBytes.
func (u *UtsName) MarshalBytes(dst []byte) []byte {
	for _, f := range u.fields() {
		dst = dst[copy(dst[:UtsNameLength], f[:]):]
	}
	return dst
}

// UnmarshalBytes implements Marshallable.UnmarshalBytes.
func (u *UtsName) UnmarshalBytes(src []byte) []byte {
	for _, f := range u.fields() {
		src = src[copy(f[:], src[:UtsNameLength]):]
	}
	return src
}

// Types lists a zero value of every fixed-layout type, keyed by name.
func Types() map[string]Marshallable {
	return map[string]Marshallable{
		"Timespec":  &Timespec{},
		"Timeval":   &Timeval{},
		"ITimerVal": &ITimerVal{},
		"Tms":       &Tms{},
		"Utimbuf":   &Utimbuf{},
		"RUsage":    &RUsage{},
		"Stat":      &Stat{},
		"PollFD":    &PollFD{},
		"SigSet":    new(SigSet),
		"SigInfo":   &SigInfo{},
		"WStatus":   &WStatus{},
		"Sockaddr":  &Sockaddr{},
		"FDSet":     &FDSet{},
		"CPUSet":    &CPUSet{},
		"UtsName":   &UtsName{},
	}
}
