// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package dsdpb implements the protobuf messages stored in dogstatsd replay
// captures.
//
// The messages are decoded directly off the wire with protowire, so no
// generated code is required. Their schema is:
//
//	message UnixDogstatsdMsg {
//	  int64 timestamp = 1;
//	  int32 payloadSize = 2;
//	  bytes payload = 3;
//	  int32 pid = 4;
//	  int32 ancillarySize = 5;
//	  bytes ancillary = 6;
//	}
//
//	message TaggerState {
//	  map<string, Entity> state = 1;
//	  map<int32, string> pidMap = 2;
//	}
//
// Unknown fields are skipped, so captures produced by newer agents that add
// fields still decode.
package dsdpb
