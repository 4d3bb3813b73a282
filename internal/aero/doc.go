// Package aero provides the core data model and physics kernels for
// blade element momentum (BEM) analysis of a horizontal-axis wind
// turbine rotor.
//
// The kernels are pure scalar functions, each one step of the coupled
// blade-element/momentum balance at a single radial station:
//
//   - [QTerms]: linearized lift-curve quadratic coefficients
//   - [AttackAngle]: angle-of-attack root of the q-term quadratic
//   - [AxialInduction], [AngularInduction]: induction factors
//   - [TipLoss]: Prandtl finite-blade tip-loss correction
//   - [LocalCoefficients]: local thrust, torque, and power coefficients
//
// All angles are in radians. Kernels detect numerical singularities at
// the division or square-root site and return a classified error rather
// than propagating NaN; see [ErrSingular] and [ErrDiscriminant].
//
// Iteration over the kernels is the job of the solver package; sweeping
// a full blade belongs to the rotor package.
package aero
