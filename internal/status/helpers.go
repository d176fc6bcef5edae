// Copyright 2024 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

func IsStatePending(status uint32) bool {
	return status&stateBitsSetMask == statePending
}

func IsStateHasValue(status uint32) bool {
	return status&stateBitsSetMask == stateHasValue
}

func IsStateHasError(status uint32) bool {
	return status&stateBitsSetMask == stateHasError
}

func IsFateUnresolved(status uint32) bool {
	return status&fateBitsSetMask == fateUnresolved
}

func IsFateResolving(status uint32) bool {
	return status&fateBitsSetMask == fateResolving
}

// IsFateResolved returns true if the state and the payload have been
// committed, and will never change afterwards.
func IsFateResolved(status uint32) bool {
	return status&fateBitsSetMask == fateResolved
}

func IsFlagsRetrieved(status uint32) bool {
	return status&FlagsRetrieved == FlagsRetrieved
}

func IsFlagsCallbackSet(status uint32) bool {
	return status&FlagsCallbackSet == FlagsCallbackSet
}
