// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . SimpleSlotWorker,SyncOracle,Proposer,BlockImport,InherentDataProvider,ChainHeadSelector,SlotWorker
