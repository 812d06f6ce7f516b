// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package micc

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . AuthoritiesAPI,BlockState,Environment,EquivocationReporter,Observer,BlockProducedRecorder
//go:generate mockgen -destination=mock_slots_test.go -package=$GOPACKAGE github.com/ChainSafe/micc/lib/slots SyncOracle,BlockImport,Proposer
