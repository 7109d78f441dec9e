// Package mocks provides shared test doubles for the store interfaces and
// the auth collaborators, so service and handler tests do not each define
// their own.
//
// Store mocks are testify mocks; WithTx returns the same mock so
// expectations set before a transaction still apply inside it.
//
//	users := new(mocks.UserStore)
//	users.On("GetByID", mock.Anything, userID).Return(user, nil)
package mocks
